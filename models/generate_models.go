package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

/*
Column Mismatch Report Usage:

The schema is normally created outside of this service. The report lists
database columns that no model field maps to, and model columns that the
database is missing, so drift shows up before a request hits it.

1. Set the environment variable: GENERATE_COLUMN_REPORT=true
2. Run the application: go run .

Example output:
	table=venues missing_in_db=[seeking_description] unmapped_in_model=[]
*/

// All returns one zero value of every persisted model, in dependency order.
func All() []any {
	return []any{&Venue{}, &Artist{}, &Show{}}
}

// Migrate creates or alters the venues, artists and shows tables.
func Migrate(db *gorm.DB) error {
	migrateDB := db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})

	if err := migrateDB.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Info().Msg("database migration completed")
	return nil
}

// GenerateModels migrates the schema and writes typed query helpers for
// every model into outPath.
func GenerateModels(db *gorm.DB, outPath string) error {
	if err := db.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return err
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(Venue{}, Artist{}, Show{})
	g.Execute()

	log.Info().Str("outPath", outPath).Msg("model generation complete")
	return nil
}

// ColumnMismatch describes drift between one table and its model.
type ColumnMismatch struct {
	Table           string
	MissingInDB     []string
	UnmappedInModel []string
}

// ColumnMismatchReport compares every model with the live table behind it.
func ColumnMismatchReport(db *gorm.DB) ([]ColumnMismatch, error) {
	var report []ColumnMismatch

	for _, model := range All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", model, err)
		}
		tableName := stmt.Schema.Table

		if !db.Migrator().HasTable(tableName) {
			report = append(report, ColumnMismatch{Table: tableName, MissingInDB: modelColumns(stmt.Schema)})
			continue
		}

		columnTypes, err := db.Migrator().ColumnTypes(model)
		if err != nil {
			return nil, fmt.Errorf("column types for %s: %w", tableName, err)
		}
		dbColumns := make([]string, 0, len(columnTypes))
		for _, ct := range columnTypes {
			dbColumns = append(dbColumns, ct.Name())
		}

		modelFields := modelColumns(stmt.Schema)
		report = append(report, ColumnMismatch{
			Table:           tableName,
			MissingInDB:     findColumnMismatches(modelFields, dbColumns),
			UnmappedInModel: findColumnMismatches(dbColumns, modelFields),
		})
	}

	return report, nil
}

// LogColumnMismatchReport runs ColumnMismatchReport and logs one line per table.
func LogColumnMismatchReport(db *gorm.DB) error {
	report, err := ColumnMismatchReport(db)
	if err != nil {
		return err
	}

	total := 0
	for _, m := range report {
		event := log.Info()
		if len(m.MissingInDB) > 0 || len(m.UnmappedInModel) > 0 {
			event = log.Warn()
		}
		event.
			Str("table", m.Table).
			Strs("missing_in_db", m.MissingInDB).
			Strs("unmapped_in_model", m.UnmappedInModel).
			Msg("column report")
		total += len(m.MissingInDB) + len(m.UnmappedInModel)
	}
	log.Info().Int("mismatches", total).Msg("column report summary")
	return nil
}

// modelColumns returns the column names of a parsed model, skipping
// relationship fields.
func modelColumns(s *schema.Schema) []string {
	columns := make([]string, 0, len(s.Fields))
	for _, field := range s.Fields {
		if field.DBName == "" {
			continue
		}
		columns = append(columns, field.DBName)
	}
	sort.Strings(columns)
	return columns
}

// findColumnMismatches returns the entries of have that want does not contain.
func findColumnMismatches(have, want []string) []string {
	wantSet := make(map[string]bool, len(want))
	for _, field := range want {
		wantSet[strings.ToLower(field)] = true
	}

	mismatches := []string{}
	for _, col := range have {
		if !wantSet[strings.ToLower(col)] {
			mismatches = append(mismatches, col)
		}
	}
	return mismatches
}
