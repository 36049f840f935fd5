// Package graphql exposes the domain services as a single GraphQL endpoint.
// Every query and mutation resolves to the same {meta, data} envelope the
// REST surface returns, with meta.code carrying the error's real status.
package graphql

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"

	"github.com/medrec/emr/internal/domain/appointment"
	"github.com/medrec/emr/internal/domain/doctor"
	"github.com/medrec/emr/internal/domain/medical"
	"github.com/medrec/emr/internal/domain/patient"
	"github.com/medrec/emr/internal/platform/respond"
)

// PatientService is the slice of patient.Service the schema resolves against.
type PatientService interface {
	Create(ctx context.Context, input patient.CreateInput) (*patient.Patient, error)
	Detail(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
	Update(ctx context.Context, id uuid.UUID, input patient.UpdateInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DoctorService interface {
	Create(ctx context.Context, input doctor.CreateInput) (*doctor.Doctor, error)
	Detail(ctx context.Context, id uuid.UUID) (*doctor.Doctor, error)
	Update(ctx context.Context, id uuid.UUID, input doctor.UpdateInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AppointmentService interface {
	Create(ctx context.Context, input appointment.CreateInput) (*appointment.Appointment, error)
	Detail(ctx context.Context, id uuid.UUID) (*appointment.Detail, error)
	Update(ctx context.Context, id uuid.UUID, input appointment.UpdateInput) error
}

type MedicalService interface {
	Create(ctx context.Context, input medical.CreateInput) (*medical.CreateResult, error)
	DetailMedication(ctx context.Context, id uuid.UUID) (*medical.Medication, error)
	DetailMedicalHistory(ctx context.Context, id uuid.UUID) (*medical.MedicalHistory, error)
	ListMedicalHistory(ctx context.Context, params medical.ListParams) (*medical.HistoryList, error)
}

// Services bundles everything the schema needs.
type Services struct {
	Patients     PatientService
	Doctors      DoctorService
	Appointments AppointmentService
	Medical      MedicalService
}

type envelope struct {
	Meta respond.Meta `json:"meta"`
	Data interface{}  `json:"data"`
}

func ok(data interface{}) envelope {
	return envelope{Meta: respond.Meta{Code: http.StatusOK, Success: true, Message: "Success"}, Data: data}
}

func fail(err error) envelope {
	code := respond.StatusOf(err)
	return envelope{Meta: respond.Meta{Code: code, Success: false, Message: err.Error()}}
}

// decodeArgs round-trips resolver arguments through JSON into a typed input.
func decodeArgs(v interface{}, dst interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return respond.BadRequest(err.Error())
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return respond.BadRequest(err.Error())
	}
	return nil
}

func parseID(v interface{}) (uuid.UUID, error) {
	s, _ := v.(string)
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, respond.BadRequest("invalid id")
	}
	return id, nil
}

var metaType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Meta",
	Fields: graphql.Fields{
		"code":    &graphql.Field{Type: graphql.Int},
		"success": &graphql.Field{Type: graphql.Boolean},
		"message": &graphql.Field{Type: graphql.String},
	},
})

var genderEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "Gender",
	Values: graphql.EnumValueConfigMap{
		"MALE":   &graphql.EnumValueConfig{Value: patient.GenderMale},
		"FEMALE": &graphql.EnumValueConfig{Value: patient.GenderFemale},
	},
})

var historyStatusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "HistoryStatus",
	Values: graphql.EnumValueConfigMap{
		"ACTIVE": &graphql.EnumValueConfig{Value: medical.StatusActive},
		"DONE":   &graphql.EnumValueConfig{Value: medical.StatusDone},
	},
})

var contactInfoType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ContactInfo",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.String},
		"patientId": &graphql.Field{Type: graphql.String},
		"email":     &graphql.Field{Type: graphql.String},
		"phone":     &graphql.Field{Type: graphql.String},
		"createdAt": &graphql.Field{Type: graphql.DateTime},
		"updatedAt": &graphql.Field{Type: graphql.DateTime},
	},
})

var patientType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Patient",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.String},
		"firstName":   &graphql.Field{Type: graphql.String},
		"lastName":    &graphql.Field{Type: graphql.String},
		"dateOfBirth": &graphql.Field{Type: graphql.String},
		"gender":      &graphql.Field{Type: genderEnum},
		"contactInfo": &graphql.Field{Type: contactInfoType},
		"createdAt":   &graphql.Field{Type: graphql.DateTime},
		"updatedAt":   &graphql.Field{Type: graphql.DateTime},
	},
})

var doctorType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Doctor",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.String},
		"name":      &graphql.Field{Type: graphql.String},
		"createdAt": &graphql.Field{Type: graphql.DateTime},
		"updatedAt": &graphql.Field{Type: graphql.DateTime},
	},
})

var appointmentType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Appointment",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.String},
		"patientId": &graphql.Field{Type: graphql.String},
		"doctorId":  &graphql.Field{Type: graphql.String},
		"date":      &graphql.Field{Type: graphql.String},
		"reason":    &graphql.Field{Type: graphql.String},
		"notes":     &graphql.Field{Type: graphql.String},
		"isAble":    &graphql.Field{Type: graphql.Boolean},
		"createdAt": &graphql.Field{Type: graphql.DateTime},
		"updatedAt": &graphql.Field{Type: graphql.DateTime},
	},
})

// detailField resolves a promoted field of appointment.Detail; the default
// resolver does not look through the embedded struct.
func detailField(typ graphql.Output, get func(*appointment.Detail) interface{}) *graphql.Field {
	return &graphql.Field{
		Type: typ,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			det, ok := p.Source.(*appointment.Detail)
			if !ok {
				return nil, nil
			}
			return get(det), nil
		},
	}
}

var appointmentDetailType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AppointmentDetail",
	Fields: graphql.Fields{
		"id":        detailField(graphql.String, func(d *appointment.Detail) interface{} { return d.ID }),
		"patientId": detailField(graphql.String, func(d *appointment.Detail) interface{} { return d.PatientID }),
		"doctorId":  detailField(graphql.String, func(d *appointment.Detail) interface{} { return d.DoctorID }),
		"date":      detailField(graphql.String, func(d *appointment.Detail) interface{} { return d.Date }),
		"reason":    detailField(graphql.String, func(d *appointment.Detail) interface{} { return d.Reason }),
		"notes":     detailField(graphql.String, func(d *appointment.Detail) interface{} { return d.Notes }),
		"isAble":    detailField(graphql.Boolean, func(d *appointment.Detail) interface{} { return d.IsAble }),
		"patient":   &graphql.Field{Type: patientType},
		"doctor":    &graphql.Field{Type: doctorType},
		"createdAt": detailField(graphql.DateTime, func(d *appointment.Detail) interface{} { return d.CreatedAt }),
		"updatedAt": detailField(graphql.DateTime, func(d *appointment.Detail) interface{} { return d.UpdatedAt }),
	},
})

var medicationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Medication",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.String},
		"patientId": &graphql.Field{Type: graphql.String},
		"name":      &graphql.Field{Type: graphql.String},
		"dosage":    &graphql.Field{Type: graphql.String},
		"frequency": &graphql.Field{Type: graphql.String},
		"createdAt": &graphql.Field{Type: graphql.DateTime},
		"updatedAt": &graphql.Field{Type: graphql.DateTime},
	},
})

var medicalHistoryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "MedicalHistory",
	Fields: graphql.Fields{
		"id":            &graphql.Field{Type: graphql.String},
		"patientId":     &graphql.Field{Type: graphql.String},
		"condition":     &graphql.Field{Type: graphql.String},
		"diagnosisDate": &graphql.Field{Type: graphql.String},
		"status":        &graphql.Field{Type: historyStatusEnum},
		"createdAt":     &graphql.Field{Type: graphql.DateTime},
		"updatedAt":     &graphql.Field{Type: graphql.DateTime},
	},
})

var paginatorType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Paginator",
	Fields: graphql.Fields{
		"itemCount":   &graphql.Field{Type: graphql.Int},
		"limit":       &graphql.Field{Type: graphql.Int},
		"pageCount":   &graphql.Field{Type: graphql.Int},
		"page":        &graphql.Field{Type: graphql.Int},
		"slNo":        &graphql.Field{Type: graphql.Int},
		"hasPrevPage": &graphql.Field{Type: graphql.Boolean},
		"hasNextPage": &graphql.Field{Type: graphql.Boolean},
		"prevPage":    &graphql.Field{Type: graphql.Int},
		"nextPage":    &graphql.Field{Type: graphql.Int},
	},
})

var historyListType = graphql.NewObject(graphql.ObjectConfig{
	Name: "MedicalHistoryList",
	Fields: graphql.Fields{
		"histories": &graphql.Field{Type: graphql.NewList(medicalHistoryType)},
		"paginator": &graphql.Field{Type: paginatorType},
	},
})

var medicalCreateType = graphql.NewObject(graphql.ObjectConfig{
	Name: "MedicalCreateResult",
	Fields: graphql.Fields{
		"medication": &graphql.Field{Type: medicationType},
		"history":    &graphql.Field{Type: medicalHistoryType},
	},
})

// responseType wraps a data type in the envelope shape.
func responseType(name string, data graphql.Output) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: name + "Response",
		Fields: graphql.Fields{
			"meta": &graphql.Field{Type: metaType},
			"data": &graphql.Field{Type: data},
		},
	})
}

var (
	patientResponse           = responseType("Patient", patientType)
	doctorResponse            = responseType("Doctor", doctorType)
	appointmentResponse       = responseType("Appointment", appointmentType)
	appointmentDetailResponse = responseType("AppointmentDetail", appointmentDetailType)
	medicationResponse        = responseType("Medication", medicationType)
	medicalHistoryResponse    = responseType("MedicalHistory", medicalHistoryType)
	historyListResponse       = responseType("MedicalHistoryList", historyListType)
	medicalCreateResponse     = responseType("MedicalCreate", medicalCreateType)
	emptyResponse             = responseType("Empty", graphql.String)
)

var contactInfoInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ContactInfoInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"email": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"phone": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var createPatientInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreatePatientInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"firstName":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"lastName":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"dateOfBirth": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"gender":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(genderEnum)},
		"contactInfo": &graphql.InputObjectFieldConfig{Type: contactInfoInput},
	},
})

var updatePatientInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdatePatientInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"firstName":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"lastName":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"dateOfBirth": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"gender":      &graphql.InputObjectFieldConfig{Type: genderEnum},
		"contactInfo": &graphql.InputObjectFieldConfig{Type: contactInfoInput},
	},
})

var doctorInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "DoctorInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var createAppointmentInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateAppointmentInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"patientId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"doctorId":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"date":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"reason":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"notes":     &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var updateAppointmentInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateAppointmentInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"date":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"reason": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"notes":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"isAble": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
	},
})

var medicationInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "MedicationInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"dosage":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"frequency": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var historyInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "MedicalHistoryInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"condition":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"diagnosisDate": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"status":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(historyStatusEnum)},
	},
})

var createMedicationInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateMedicationInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"patientId":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"medication": &graphql.InputObjectFieldConfig{Type: medicationInput},
		"history":    &graphql.InputObjectFieldConfig{Type: historyInput},
	},
})

var idArg = graphql.FieldConfigArgument{
	"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
}

// NewSchema builds the executable schema over the given services.
func NewSchema(svcs Services) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getPatient": &graphql.Field{
				Type: patientResponse,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := parseID(p.Args["id"])
					if err != nil {
						return fail(err), nil
					}
					pt, err := svcs.Patients.Detail(p.Context, id)
					if err != nil {
						return fail(err), nil
					}
					return ok(pt), nil
				},
			},
			"getDoctor": &graphql.Field{
				Type: doctorResponse,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := parseID(p.Args["id"])
					if err != nil {
						return fail(err), nil
					}
					d, err := svcs.Doctors.Detail(p.Context, id)
					if err != nil {
						return fail(err), nil
					}
					return ok(d), nil
				},
			},
			"getAppointment": &graphql.Field{
				Type: appointmentDetailResponse,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := parseID(p.Args["id"])
					if err != nil {
						return fail(err), nil
					}
					det, err := svcs.Appointments.Detail(p.Context, id)
					if err != nil {
						return fail(err), nil
					}
					return ok(det), nil
				},
			},
			"getMedication": &graphql.Field{
				Type: medicationResponse,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := parseID(p.Args["id"])
					if err != nil {
						return fail(err), nil
					}
					m, err := svcs.Medical.DetailMedication(p.Context, id)
					if err != nil {
						return fail(err), nil
					}
					return ok(m), nil
				},
			},
			"getMedicalHistory": &graphql.Field{
				Type: medicalHistoryResponse,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := parseID(p.Args["id"])
					if err != nil {
						return fail(err), nil
					}
					h, err := svcs.Medical.DetailMedicalHistory(p.Context, id)
					if err != nil {
						return fail(err), nil
					}
					return ok(h), nil
				},
			},
			"listMedicalHistory": &graphql.Field{
				Type: historyListResponse,
				Args: graphql.FieldConfigArgument{
					"patientId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"page":      &graphql.ArgumentConfig{Type: graphql.Int},
					"limit":     &graphql.ArgumentConfig{Type: graphql.Int},
					"keyword":   &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					patientID, err := parseID(p.Args["patientId"])
					if err != nil {
						return fail(err), nil
					}
					params := medical.ListParams{PatientID: patientID}
					if v, ok := p.Args["page"].(int); ok {
						params.Page = v
					}
					if v, ok := p.Args["limit"].(int); ok {
						params.Limit = v
					}
					if v, ok := p.Args["keyword"].(string); ok {
						params.Keyword = v
					}
					list, err := svcs.Medical.ListMedicalHistory(p.Context, params)
					if err != nil {
						return fail(err), nil
					}
					return ok(list), nil
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createPatient": &graphql.Field{
				Type: patientResponse,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createPatientInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var input patient.CreateInput
					if err := decodeArgs(p.Args["input"], &input); err != nil {
						return fail(err), nil
					}
					pt, err := svcs.Patients.Create(p.Context, input)
					if err != nil {
						return fail(err), nil
					}
					return ok(pt), nil
				},
			},
			"updatePatient": &graphql.Field{
				Type: emptyResponse,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updatePatientInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := parseID(p.Args["id"])
					if err != nil {
						return fail(err), nil
					}
					var input patient.UpdateInput
					if err := decodeArgs(p.Args["input"], &input); err != nil {
						return fail(err), nil
					}
					if err := svcs.Patients.Update(p.Context, id, input); err != nil {
						return fail(err), nil
					}
					return ok(nil), nil
				},
			},
			"deletePatient": &graphql.Field{
				Type: emptyResponse,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := parseID(p.Args["id"])
					if err != nil {
						return fail(err), nil
					}
					if err := svcs.Patients.Delete(p.Context, id); err != nil {
						return fail(err), nil
					}
					return ok(nil), nil
				},
			},
			"createDoctor": &graphql.Field{
				Type: doctorResponse,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(doctorInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var input doctor.CreateInput
					if err := decodeArgs(p.Args["input"], &input); err != nil {
						return fail(err), nil
					}
					d, err := svcs.Doctors.Create(p.Context, input)
					if err != nil {
						return fail(err), nil
					}
					return ok(d), nil
				},
			},
			"updateDoctor": &graphql.Field{
				Type: emptyResponse,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(doctorInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := parseID(p.Args["id"])
					if err != nil {
						return fail(err), nil
					}
					var input doctor.UpdateInput
					if err := decodeArgs(p.Args["input"], &input); err != nil {
						return fail(err), nil
					}
					if err := svcs.Doctors.Update(p.Context, id, input); err != nil {
						return fail(err), nil
					}
					return ok(nil), nil
				},
			},
			"deleteDoctor": &graphql.Field{
				Type: emptyResponse,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := parseID(p.Args["id"])
					if err != nil {
						return fail(err), nil
					}
					if err := svcs.Doctors.Delete(p.Context, id); err != nil {
						return fail(err), nil
					}
					return ok(nil), nil
				},
			},
			"createAppointment": &graphql.Field{
				Type: appointmentResponse,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createAppointmentInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var input appointment.CreateInput
					if err := decodeArgs(p.Args["input"], &input); err != nil {
						return fail(err), nil
					}
					a, err := svcs.Appointments.Create(p.Context, input)
					if err != nil {
						return fail(err), nil
					}
					return ok(a), nil
				},
			},
			"updateAppointment": &graphql.Field{
				Type: emptyResponse,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateAppointmentInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := parseID(p.Args["id"])
					if err != nil {
						return fail(err), nil
					}
					var input appointment.UpdateInput
					if err := decodeArgs(p.Args["input"], &input); err != nil {
						return fail(err), nil
					}
					if err := svcs.Appointments.Update(p.Context, id, input); err != nil {
						return fail(err), nil
					}
					return ok(nil), nil
				},
			},
			"createMedication": &graphql.Field{
				Type: medicalCreateResponse,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createMedicationInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var input medical.CreateInput
					if err := decodeArgs(p.Args["input"], &input); err != nil {
						return fail(err), nil
					}
					res, err := svcs.Medical.Create(p.Context, input)
					if err != nil {
						return fail(err), nil
					}
					return ok(res), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}
