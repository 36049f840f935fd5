package medical

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medrec/emr/internal/domain/patient"
	"github.com/medrec/emr/internal/platform/respond"
)

type mockRepo struct {
	medications map[uuid.UUID]*Medication
	histories   map[uuid.UUID]*MedicalHistory
	patients    map[uuid.UUID]*patient.Patient

	seq               int
	failCreateHistory bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		medications: make(map[uuid.UUID]*Medication),
		histories:   make(map[uuid.UUID]*MedicalHistory),
		patients:    make(map[uuid.UUID]*patient.Patient),
	}
}

func (m *mockRepo) snapshot() (map[uuid.UUID]Medication, map[uuid.UUID]MedicalHistory) {
	ms := make(map[uuid.UUID]Medication, len(m.medications))
	for id, v := range m.medications {
		ms[id] = *v
	}
	hs := make(map[uuid.UUID]MedicalHistory, len(m.histories))
	for id, v := range m.histories {
		hs[id] = *v
	}
	return ms, hs
}

func (m *mockRepo) restore(ms map[uuid.UUID]Medication, hs map[uuid.UUID]MedicalHistory) {
	m.medications = make(map[uuid.UUID]*Medication, len(ms))
	for id, v := range ms {
		cp := v
		m.medications[id] = &cp
	}
	m.histories = make(map[uuid.UUID]*MedicalHistory, len(hs))
	for id, v := range hs {
		cp := v
		m.histories[id] = &cp
	}
}

func (m *mockRepo) CreateMedication(ctx context.Context, med *Medication) error {
	med.ID = uuid.New()
	m.seq++
	med.CreatedAt = time.Unix(int64(m.seq), 0)
	cp := *med
	m.medications[med.ID] = &cp
	return nil
}

func (m *mockRepo) GetMedicationByID(ctx context.Context, id uuid.UUID) (*Medication, error) {
	med, ok := m.medications[id]
	if !ok {
		return nil, ErrMedicationNotFound
	}
	cp := *med
	return &cp, nil
}

func (m *mockRepo) CreateHistory(ctx context.Context, h *MedicalHistory) error {
	if m.failCreateHistory {
		return errors.New("insert medical_histories failed")
	}
	h.ID = uuid.New()
	m.seq++
	h.CreatedAt = time.Unix(int64(m.seq), 0)
	cp := *h
	m.histories[h.ID] = &cp
	return nil
}

func (m *mockRepo) GetHistoryByID(ctx context.Context, id uuid.UUID) (*MedicalHistory, error) {
	h, ok := m.histories[id]
	if !ok {
		return nil, ErrHistoryNotFound
	}
	cp := *h
	return &cp, nil
}

func (m *mockRepo) filtered(patientID uuid.UUID, keyword string) []MedicalHistory {
	out := make([]MedicalHistory, 0)
	for _, h := range m.histories {
		if h.PatientID != patientID {
			continue
		}
		if keyword != "" && !strings.Contains(strings.ToLower(h.Condition), strings.ToLower(keyword)) {
			continue
		}
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (m *mockRepo) CountHistories(ctx context.Context, patientID uuid.UUID, keyword string) (int, error) {
	return len(m.filtered(patientID, keyword)), nil
}

func (m *mockRepo) ListHistories(ctx context.Context, patientID uuid.UUID, keyword string, limit, offset int) ([]MedicalHistory, error) {
	rows := m.filtered(patientID, keyword)
	if offset >= len(rows) {
		return []MedicalHistory{}, nil
	}
	rows = rows[offset:]
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

type patientLookup struct{ repo *mockRepo }

func (l patientLookup) Detail(ctx context.Context, id uuid.UUID) (*patient.Patient, error) {
	p, ok := l.repo.patients[id]
	if !ok {
		return nil, respond.NotFound("Patient is not found.")
	}
	return p, nil
}

type fakeTx struct {
	repo *mockRepo
}

func (f *fakeTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	ms, hs := f.repo.snapshot()
	if err := fn(ctx); err != nil {
		f.repo.restore(ms, hs)
		return err
	}
	return nil
}

func newTestService(repo *mockRepo) *Service {
	return NewService(repo, patientLookup{repo}, &fakeTx{repo: repo}, zerolog.Nop())
}

func seedPatient(repo *mockRepo) uuid.UUID {
	p := &patient.Patient{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace"}
	repo.patients[p.ID] = p
	return p.ID
}

func seedHistories(t *testing.T, svc *Service, patientID uuid.UUID, conditions ...string) {
	t.Helper()
	for _, cond := range conditions {
		_, err := svc.Create(context.Background(), CreateInput{
			PatientID: patientID,
			History:   &HistoryInput{Condition: cond, DiagnosisDate: "2024-01-01", Status: StatusActive},
		})
		if err != nil {
			t.Fatalf("seed history %q: %v", cond, err)
		}
	}
}

func TestCreate_MedicationAndHistory(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	patientID := seedPatient(repo)

	res, err := svc.Create(context.Background(), CreateInput{
		PatientID:  patientID,
		Medication: &MedicationInput{Name: "Lisinopril", Dosage: "10mg", Frequency: "daily"},
		History:    &HistoryInput{Condition: "hypertension", DiagnosisDate: "2024-01-01", Status: StatusActive},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.Medication == nil || res.History == nil {
		t.Fatalf("result = %+v", res)
	}
	if res.Medication.PatientID != patientID || res.History.PatientID != patientID {
		t.Fatal("patient id not stamped onto sub-payloads")
	}
}

func TestCreate_MedicationOnly(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	patientID := seedPatient(repo)

	res, err := svc.Create(context.Background(), CreateInput{
		PatientID:  patientID,
		Medication: &MedicationInput{Name: "Lisinopril", Dosage: "10mg", Frequency: "daily"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.Medication == nil {
		t.Fatal("expected medication")
	}
	if res.History != nil {
		t.Fatal("expected no history")
	}
	if len(repo.histories) != 0 {
		t.Fatalf("expected 0 history rows, got %d", len(repo.histories))
	}
}

func TestCreate_UnknownPatient(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), CreateInput{
		PatientID:  uuid.New(),
		Medication: &MedicationInput{Name: "Lisinopril", Dosage: "10mg", Frequency: "daily"},
	})
	if !respond.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(repo.medications) != 0 {
		t.Fatal("medication persisted despite missing patient")
	}
}

func TestCreate_HistoryFailureRollsBackMedication(t *testing.T) {
	repo := newMockRepo()
	repo.failCreateHistory = true
	svc := newTestService(repo)
	patientID := seedPatient(repo)

	_, err := svc.Create(context.Background(), CreateInput{
		PatientID:  patientID,
		Medication: &MedicationInput{Name: "Lisinopril", Dosage: "10mg", Frequency: "daily"},
		History:    &HistoryInput{Condition: "hypertension", DiagnosisDate: "2024-01-01", Status: StatusActive},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(repo.medications) != 0 {
		t.Fatalf("medication persisted after failed history insert: %d rows", len(repo.medications))
	}
	if len(repo.histories) != 0 {
		t.Fatalf("expected 0 history rows, got %d", len(repo.histories))
	}
}

func TestDetailMedication_NotFound(t *testing.T) {
	svc := newTestService(newMockRepo())

	_, err := svc.DetailMedication(context.Background(), uuid.New())
	if !respond.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err.Error() != "Medication is not found." {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestDetailMedicalHistory_NotFound(t *testing.T) {
	svc := newTestService(newMockRepo())

	_, err := svc.DetailMedicalHistory(context.Background(), uuid.New())
	if !respond.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListMedicalHistory_FirstPage(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	patientID := seedPatient(repo)
	seedHistories(t, svc, patientID, "asthma", "hypertension", "diabetes")

	list, err := svc.ListMedicalHistory(context.Background(), ListParams{
		PatientID: patientID, Page: 1, Limit: 2,
	})
	if err != nil {
		t.Fatalf("ListMedicalHistory: %v", err)
	}
	if len(list.Histories) != 2 {
		t.Fatalf("len = %d, want 2", len(list.Histories))
	}
	p := list.Paginator
	if p.ItemCount != 3 || p.PageCount != 2 || p.Page != 1 || p.SlNo != 1 {
		t.Fatalf("paginator = %+v", p)
	}
	if p.HasPrevPage || !p.HasNextPage {
		t.Fatalf("paginator = %+v", p)
	}
	if p.NextPage == nil || *p.NextPage != 2 {
		t.Fatalf("nextPage = %v", p.NextPage)
	}
	// insertion order
	if list.Histories[0].Condition != "asthma" || list.Histories[1].Condition != "hypertension" {
		t.Fatalf("order = %q, %q", list.Histories[0].Condition, list.Histories[1].Condition)
	}
}

func TestListMedicalHistory_PageClamped(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	patientID := seedPatient(repo)
	seedHistories(t, svc, patientID, "asthma", "hypertension", "diabetes")

	list, err := svc.ListMedicalHistory(context.Background(), ListParams{
		PatientID: patientID, Page: 9, Limit: 2,
	})
	if err != nil {
		t.Fatalf("ListMedicalHistory: %v", err)
	}
	p := list.Paginator
	if p.Page != 2 {
		t.Fatalf("page = %d, want 2", p.Page)
	}
	if len(list.Histories) != 1 {
		t.Fatalf("len = %d, want 1", len(list.Histories))
	}
	if list.Histories[0].Condition != "diabetes" {
		t.Fatalf("condition = %q", list.Histories[0].Condition)
	}
	if p.SlNo != 2 {
		t.Fatalf("slNo = %d, want 2", p.SlNo)
	}
}

func TestListMedicalHistory_KeywordFilters(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	patientID := seedPatient(repo)
	seedHistories(t, svc, patientID, "asthma", "hypertension", "hyperthyroidism")

	list, err := svc.ListMedicalHistory(context.Background(), ListParams{
		PatientID: patientID, Page: 1, Limit: 10, Keyword: "hyper",
	})
	if err != nil {
		t.Fatalf("ListMedicalHistory: %v", err)
	}
	if len(list.Histories) != 2 {
		t.Fatalf("len = %d, want 2", len(list.Histories))
	}
	if list.Paginator.ItemCount != 2 {
		t.Fatalf("itemCount = %d", list.Paginator.ItemCount)
	}
}

func TestListMedicalHistory_ShortKeywordIgnored(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	patientID := seedPatient(repo)
	seedHistories(t, svc, patientID, "asthma", "hypertension")

	// two characters is below the filter threshold
	list, err := svc.ListMedicalHistory(context.Background(), ListParams{
		PatientID: patientID, Page: 1, Limit: 10, Keyword: "hy",
	})
	if err != nil {
		t.Fatalf("ListMedicalHistory: %v", err)
	}
	if len(list.Histories) != 2 {
		t.Fatalf("len = %d, want 2 (keyword must be ignored)", len(list.Histories))
	}
}

func TestListMedicalHistory_NoResults(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	patientID := seedPatient(repo)

	list, err := svc.ListMedicalHistory(context.Background(), ListParams{
		PatientID: patientID, Page: 1, Limit: 10,
	})
	if err != nil {
		t.Fatalf("ListMedicalHistory: %v", err)
	}
	if list.Histories == nil || len(list.Histories) != 0 {
		t.Fatalf("histories = %v, want empty slice", list.Histories)
	}
	p := list.Paginator
	if p.ItemCount != 0 || p.PageCount != 0 || p.Page != 1 {
		t.Fatalf("paginator = %+v", p)
	}
	if p.HasPrevPage || p.HasNextPage || p.PrevPage != nil || p.NextPage != nil {
		t.Fatalf("paginator = %+v", p)
	}
}

func TestListMedicalHistory_DefaultsApplied(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	patientID := seedPatient(repo)
	seedHistories(t, svc, patientID, "asthma")

	list, err := svc.ListMedicalHistory(context.Background(), ListParams{PatientID: patientID})
	if err != nil {
		t.Fatalf("ListMedicalHistory: %v", err)
	}
	if list.Paginator.Limit != 10 || list.Paginator.Page != 1 {
		t.Fatalf("paginator = %+v", list.Paginator)
	}
}
