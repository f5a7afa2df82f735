// internal/registry/builtins.go
package registry

import "github.com/unclebandit/leadsegment-backend/internal/model"

// defaultTimestampLayouts are tried in order against the lead-insert
// column. CRM exports are inconsistent even within one client.
var defaultTimestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006 15:04",
	"02/01/2006",
}

// builtinProfiles are the clients shipped with the service. Adding a
// client means adding an entry here (or in the YAML overlay), never a new
// code branch.
func builtinProfiles() []model.ClientProfile {
	return []model.ClientProfile{
		{
			ID:   "CREXE",
			Name: "CREXE",
			Groups: []model.GroupSpec{
				{
					Name: "1 día antes",
					Statuses: model.StatusFilter{Mode: model.StatusList, Values: []string{
						"Se brinda información",
						"Se brinda información Whatsapp",
						"Volver a llamar",
					}},
					Dates:  model.DateFilter{Enabled: true, DaysBefore: []int{1}},
					Active: true,
				},
				{
					Name: "2 días antes - Positivos",
					Statuses: model.StatusFilter{Mode: model.StatusList, Values: []string{
						"Analizando propuesta",
						"Oportunidad de venta",
						"En proceso de pago",
					}},
					Dates:  model.DateFilter{Enabled: true, DaysBefore: []int{2}},
					Active: true,
				},
				{
					Name: "2 días antes - Negativos",
					Statuses: model.StatusFilter{Mode: model.StatusList, Values: []string{
						"Le parece caro",
						"Siguiente cohorte",
						"Motivos personales",
						"No es la oferta buscada",
					}},
					Dates:  model.DateFilter{Enabled: true, DaysBefore: []int{2}},
					Active: true,
				},
				{
					Name: "Sin filtro de fecha",
					Statuses: model.StatusFilter{Mode: model.StatusList, Values: []string{
						"No contesta",
						"NotProcessed",
					}},
					Active: true,
				},
				{
					Name: "1 día antes y día actual - Especiales",
					Statuses: model.StatusFilter{Mode: model.StatusList, Values: []string{
						"Spam - Desconoce haber solicitado informacion",
						"Telefono erroneo o fuera de servicio",
						"Pide no ser llamado",
						"Imposible contactar",
					}},
					Dates:  model.DateFilter{Enabled: true, DaysBefore: []int{0, 1}},
					Active: true,
				},
			},
			Output: model.ColumnMapping{
				{Source: model.FieldName, Dest: "Nombre"},
				{Source: model.FieldPhone, Dest: "Telefono"},
				{Source: model.FieldEmail, Dest: "Email"},
				{Source: model.FieldProgram, Dest: "Programa"},
				{Source: model.FieldWhatsapp, Dest: "Whatsapp"},
			},
			SourceAliases: map[string][]string{
				model.FieldName:     {"Nombre y Apellido", "Nombre", "nombre", "NOMBRE"},
				model.FieldPhone:    {"teltelefono", "Tel", "Teléfono", "Telefono", "Celular"},
				model.FieldWhatsapp: {"TelWhatsapp"},
				model.FieldEmail:    {"emlMail", "Email", "e-mail", "E-mail", "email"},
				model.FieldProgram:  {"Carrera Interes", "Programa", "Carrera"},
				model.FieldStatus:   {"Resolución", "Ultima Resolución"},
				model.FieldLeadDate: {"Fecha Insert Lead"},
			},
			TimestampLayouts: defaultTimestampLayouts,
			Hooks:            model.Hooks{FirstNameOnly: true},
		},
		{
			ID:   "UNAB",
			Name: "UNAB",
			Groups: []model.GroupSpec{
				{
					Name:     "Bienvenida UNAB",
					Statuses: model.StatusFilter{Mode: model.StatusAny},
					Dates:    model.DateFilter{Enabled: true, DaysBefore: []int{0, 1}},
					Active:   true,
				},
				{
					Name: "Nurturing UNAB",
					Statuses: model.StatusFilter{Mode: model.StatusWeekday, ByWeekday: map[string][]string{
						"Lunes": {
							"Se brinda información",
							"Analizando propuesta",
							"Oportunidad de venta",
						},
						"Martes": {
							"No contesta",
							"Buzón de voz",
							"Teléfono erróneo",
							"Imposible contactar",
						},
						"Miércoles": {
							"Volver a llamar",
							"Volver a llamar ultimo intento",
						},
						"Jueves": {
							"Dejo de responder",
							"Le parece caro",
							"Siguiente cohorte",
							"Inscripto en otra universidad",
						},
						"Viernes": {
							"Horarios",
							"Motivos personales",
							"Modalidad de cursado",
							"No es la oferta buscada",
						},
					}},
					Active: true,
				},
			},
			Output: model.ColumnMapping{
				{Source: model.FieldName, Dest: "Nombre"},
				{Source: model.FieldPhone, Dest: "Telefono"},
				{Source: model.FieldEmail, Dest: "Email"},
				{Source: model.FieldProgram, Dest: "Programa"},
				{Source: model.FieldWhatsapp, Dest: "Whatsapp"},
			},
			SourceAliases: map[string][]string{
				model.FieldName:     {"Nombre y Apellido", "Nombre", "nombre", "NOMBRE"},
				model.FieldPhone:    {"Tel", "teltelefono", "Teléfono", "Telefono"},
				model.FieldWhatsapp: {"TelWhatsapp"},
				model.FieldEmail:    {"Email", "emlMail", "e-mail", "E-mail", "email"},
				model.FieldProgram:  {"Programa", "Carrera Interes", "Carrera"},
				model.FieldStatus:   {"Resolución"},
				model.FieldLeadDate: {"Fecha Insert Lead"},
			},
			TimestampLayouts: defaultTimestampLayouts,
			Hooks:            model.Hooks{FirstNameOnly: true},
		},
		{
			ID:   "ULINEA_ANAHUAC",
			Name: "ULINEA_ANAHUAC",
			Groups: []model.GroupSpec{
				{
					Name:     "Segmentación Base",
					Statuses: model.StatusFilter{Mode: model.StatusAny},
					Active:   true,
				},
			},
			Output: model.ColumnMapping{
				{Source: model.FieldName, Dest: "Nombre"},
				{Source: model.FieldPhone, Dest: "Telefono"},
				{Source: model.FieldEmail, Dest: "Email"},
				{Source: model.FieldStatus, Dest: "Tipificacion"},
				{Source: model.FieldWhatsapp, Dest: "Whatsapp"},
			},
			SourceAliases: map[string][]string{
				model.FieldName:     {"Nombre", "Nombre y Apellido", "nombre"},
				model.FieldPhone:    {"Tel", "teltelefono", "Teléfono", "Celular"},
				model.FieldWhatsapp: {"TelWhatsapp"},
				model.FieldEmail:    {"Email", "emlMail", "e-mail", "E-mail"},
				model.FieldStatus:   {"Ultima Resolución", "Resolución"},
				model.FieldLeadDate: {"Fecha Insert Lead"},
			},
			TimestampLayouts: defaultTimestampLayouts,
			Hooks: model.Hooks{
				FirstNameOnly:   true,
				SplitStatusCode: true,
			},
		},
		{
			ID:   "PK_CBA",
			Name: "PK_CBA",
			Groups: []model.GroupSpec{
				{
					Name:     "Segmentación Base",
					Statuses: model.StatusFilter{Mode: model.StatusAny},
					Active:   true,
				},
			},
			Output: model.ColumnMapping{
				{Source: model.FieldName, Dest: "Nombre"},
				{Source: "Apellido", Dest: "Apellido"},
				{Source: model.FieldEmail, Dest: "Email"},
				{Source: model.FieldPhone, Dest: "Tel"},
				{Source: model.FieldProgram, Dest: "Programa"},
				{Source: model.FieldProgramCode, Dest: "Cod_Programa"},
			},
			SourceAliases: map[string][]string{
				model.FieldName:     {"Nombre", "nombre"},
				model.FieldPhone:    {"Móvil", "Celular", "Tel"},
				model.FieldEmail:    {"e-Mail", "Email", "email"},
				model.FieldProgram:  {"Carrera de Interes", "Carrera", "carrera"},
				model.FieldStatus:   {"Resolución"},
				model.FieldLeadDate: {"Fecha Insert Lead"},
			},
			TimestampLayouts: defaultTimestampLayouts,
			Hooks: model.Hooks{
				FirstNameOnly: true,
				ProgramCodes: map[string]string{
					"Abogacía": "1",
					"Tecnicatura Universitaria en Martillero Público y Corredor": "2",
					"Licenciatura en Psicopedagogía":                             "3",
					"*":                                                          "4",
				},
			},
			FilePattern: "{client}_{group}_{date}.xlsx",
		},
	}
}
