package database

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rpupo63/fyyur/errs"
	"gorm.io/gorm"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateEntity turns validator failures into errs validation errors. Only
// the first failing field is reported.
func validateEntity(entity any) error {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if fe.Tag() == "required" {
			return errs.NewMissingFieldError(fe.Field())
		}
		return errs.NewInvalidFieldError(fe.Field(), fe.Error())
	}
	return errs.NewInvalidFieldError("", err.Error())
}

// classify maps a gorm error to the errs taxonomy.
func classify(operation, entity string, id any, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewNotFound(entity, id)
	}
	return errs.NewPersistenceError(operation, entity, err)
}

// likePattern builds a substring pattern for term. LIKE wildcards in term
// match literally.
func likePattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(term) + "%"
}

// nameContains filters rows whose name contains term, ignoring case. Both
// sides are folded by the database's LOWER so they always agree; sqlite
// folds ASCII letters only. A blank term matches every row.
func nameContains(term string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" {
			return db
		}
		return db.Where(`LOWER(name) LIKE LOWER(?) ESCAPE '\'`, likePattern(term))
	}
}

// TimeWindow selects shows relative to a reference time.
type TimeWindow int

const (
	// Past selects shows that started strictly before the reference time.
	Past TimeWindow = iota
	// Upcoming selects shows that start strictly after the reference time.
	Upcoming
)

func (w TimeWindow) String() string {
	if w == Past {
		return "past"
	}
	return "upcoming"
}

func inWindow(window TimeWindow, now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if window == Past {
			return db.Where("shows.start_time < ?", now.UTC())
		}
		return db.Where("shows.start_time > ?", now.UTC())
	}
}
