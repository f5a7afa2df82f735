package service

import (
	"errors"
	"testing"
	"time"

	appErrors "github.com/unclebandit/leadsegment-backend/internal/errors"
	"github.com/unclebandit/leadsegment-backend/internal/model"
	"github.com/unclebandit/leadsegment-backend/internal/registry"
	"github.com/unclebandit/leadsegment-backend/internal/tabular"
	"github.com/unclebandit/leadsegment-backend/internal/unify"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testInputs() []unify.Input {
	a := "Nombre,Tel,Email,Resolución,Fecha Insert Lead\n" +
		"ana maria,+54 11 5555-0001,A@x.com,Volver a llamar,2024-05-09\n" +
		"beatriz,11 5555-0002,b@x.com,No contesta,2024-05-09\n" +
		"carla,11 5555-0003,c@x.com,Volver a llamar,2024-05-08\n"
	b := "Nombre,Tel,Email,Resolución,Fecha Insert Lead\n" +
		"diana,11 5555-0004,d@x.com,Volver a llamar,not-a-date\n"
	return []unify.Input{
		{Name: "a.csv", Data: []byte(a)},
		{Name: "b.csv", Data: []byte(b)},
	}
}

func testSvc() *PipelineService {
	return &PipelineService{Registry: registry.New()}
}

func testProfile() *model.ClientProfile {
	return &model.ClientProfile{
		ID: "TEST",
		Groups: []model.GroupSpec{
			{
				Name:     "Recontactar",
				Statuses: model.StatusFilter{Mode: model.StatusList, Values: []string{"Volver a llamar"}},
				Dates:    model.DateFilter{Enabled: true, DaysBefore: []int{1}},
				Active:   true,
			},
			{
				Name:     "Sin respuesta",
				Statuses: model.StatusFilter{Mode: model.StatusList, Values: []string{"Sin señal"}},
				Active:   true,
			},
		},
		Output: model.ColumnMapping{
			{Source: model.FieldName, Dest: "Nombre"},
			{Source: model.FieldPhone, Dest: "Telefono"},
			{Source: model.FieldEmail, Dest: "Email"},
		},
		SourceAliases: map[string][]string{
			model.FieldName:     {"Nombre"},
			model.FieldPhone:    {"Tel"},
			model.FieldEmail:    {"Email"},
			model.FieldStatus:   {"Resolución"},
			model.FieldLeadDate: {"Fecha Insert Lead"},
		},
		TimestampLayouts: []string{"2006-01-02"},
		Hooks:            model.Hooks{FirstNameOnly: true},
	}
}

func TestRunEndToEnd(t *testing.T) {
	svc := testSvc()
	result, err := svc.Run(RunRequest{
		ClientID:  "TEST",
		Reference: day(2024, 5, 10),
		Inputs:    testInputs(),
		Profile:   testProfile(),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.TotalRecords != 4 {
		t.Errorf("TotalRecords = %d, want 4", result.TotalRecords)
	}
	if result.InvalidDates != 1 {
		t.Errorf("InvalidDates = %d, want 1", result.InvalidDates)
	}
	if len(result.Groups) != 2 {
		t.Fatalf("Groups = %+v", result.Groups)
	}

	// Only ana matches: status + lead date 2024-05-09. carla is one day
	// too old, diana's date never parsed.
	first := result.Groups[0]
	if first.Records != 1 {
		t.Errorf("group %q records = %d, want 1", first.Name, first.Records)
	}
	if first.FileName != "Recontactar 10-05-2024.xlsx" {
		t.Errorf("FileName = %q", first.FileName)
	}

	// Zero-record group is reported but produces no artifact.
	second := result.Groups[1]
	if second.Records != 0 || second.FileName != "" {
		t.Errorf("empty group summary = %+v", second)
	}
	if len(result.Artifacts) != 1 {
		t.Fatalf("Artifacts = %d, want 1", len(result.Artifacts))
	}

	// The artifact decodes back to the mapped layout with normalized
	// values.
	table, err := tabular.ReadXLSX(result.Artifacts[0].Content, first.FileName)
	if err != nil {
		t.Fatalf("ReadXLSX: %v", err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("artifact rows = %d", len(table.Rows))
	}
	if got := table.Cell(table.Rows[0], 0); got != "Ana" {
		t.Errorf("Nombre = %q, want Ana", got)
	}
	if got := table.Cell(table.Rows[0], 1); got != "541155550001" {
		t.Errorf("Telefono = %q", got)
	}
	if got := table.Cell(table.Rows[0], 2); got != "a@x.com" {
		t.Errorf("Email = %q", got)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	svc := testSvc()
	req := RunRequest{
		ClientID:  "TEST",
		Reference: day(2024, 5, 10),
		Inputs:    testInputs(),
		Profile:   testProfile(),
	}

	first, err := svc.Run(req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	second, err := svc.Run(req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(first.Artifacts) != len(second.Artifacts) {
		t.Fatalf("artifact counts differ: %d vs %d", len(first.Artifacts), len(second.Artifacts))
	}
	for i := range first.Artifacts {
		ta, _ := tabular.ReadXLSX(first.Artifacts[i].Content, "a")
		tb, _ := tabular.ReadXLSX(second.Artifacts[i].Content, "b")
		ca, _ := tabular.WriteCSV(ta.Headers, ta.Rows)
		cb, _ := tabular.WriteCSV(tb.Headers, tb.Rows)
		if string(ca) != string(cb) {
			t.Errorf("artifact %d content differs between runs", i)
		}
	}
}

func TestRunNoDataHalts(t *testing.T) {
	svc := testSvc()
	_, err := svc.Run(RunRequest{
		ClientID:  "TEST",
		Reference: day(2024, 5, 10),
		Inputs:    []unify.Input{{Name: "empty.csv", Data: []byte("Nombre,Tel\n")}},
		Profile:   testProfile(),
	})

	var noData *appErrors.NoDataError
	if !errors.As(err, &noData) {
		t.Fatalf("err = %v, want NoDataError", err)
	}
	if noData.ClientID != "TEST" {
		t.Errorf("ClientID = %q", noData.ClientID)
	}
}

func TestRunUnknownClientHasNothingToSegment(t *testing.T) {
	svc := testSvc()
	result, err := svc.Run(RunRequest{
		ClientID:  "NOBODY",
		Reference: day(2024, 5, 10),
		Inputs:    testInputs(),
	})
	if err != nil {
		t.Fatalf("Run: %v (empty profile is not an error)", err)
	}
	if len(result.Groups) != 0 || len(result.Artifacts) != 0 {
		t.Errorf("unknown client produced output: %+v", result.Groups)
	}
}

func TestRunSkipsBadTableAndContinues(t *testing.T) {
	svc := testSvc()
	inputs := append([]unify.Input{{Name: "bad.xlsx", Data: []byte("garbage")}}, testInputs()...)
	result, err := svc.Run(RunRequest{
		ClientID:  "TEST",
		Reference: day(2024, 5, 10),
		Inputs:    inputs,
		Profile:   testProfile(),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.SkippedTables) != 1 || result.SkippedTables[0].Table != "bad.xlsx" {
		t.Errorf("SkippedTables = %+v", result.SkippedTables)
	}
	if result.TotalRecords != 4 {
		t.Errorf("TotalRecords = %d, want 4", result.TotalRecords)
	}
}

func TestRunReportsMissingOutputColumns(t *testing.T) {
	svc := testSvc()
	profile := testProfile()
	profile.Output = append(profile.Output, model.ColumnMap{Source: model.FieldWhatsapp, Dest: "Whatsapp"})

	result, err := svc.Run(RunRequest{
		ClientID:  "TEST",
		Reference: day(2024, 5, 10),
		Inputs:    testInputs(),
		Profile:   profile,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.MissingColumns) != 1 || result.MissingColumns[0] != model.FieldWhatsapp {
		t.Errorf("MissingColumns = %v", result.MissingColumns)
	}

	// The artifact still carries the Whatsapp header with empty cells.
	table, err := tabular.ReadXLSX(result.Artifacts[0].Content, "out.xlsx")
	if err != nil {
		t.Fatalf("ReadXLSX: %v", err)
	}
	if table.Headers[3] != "Whatsapp" {
		t.Errorf("headers = %v", table.Headers)
	}
	if got := table.Cell(table.Rows[0], 3); got != "" {
		t.Errorf("Whatsapp cell = %q, want empty", got)
	}
}
