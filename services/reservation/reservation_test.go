package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	reservationRepo "agendly/database/repository/reservation"
	"agendly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeProviderRepo struct {
	providers map[string]*models.Provider
}

func (f *fakeProviderRepo) GetByID(id string) (*models.Provider, error) {
	p, ok := f.providers[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProviderRepo) GetByEmail(email string) (*models.Provider, error) { return nil, nil }
func (f *fakeProviderRepo) GetAll() ([]models.Provider, error)               { return nil, nil }
func (f *fakeProviderRepo) Create(p *models.Provider) error {
	f.providers[p.ID] = p
	return nil
}
func (f *fakeProviderRepo) Delete(id string) error { return nil }
func (f *fakeProviderRepo) SetWorkingWindows(id string, windows []models.WorkingWindow) error {
	f.providers[id].WorkingWindows = windows
	return nil
}
func (f *fakeProviderRepo) GetWorkingWindows(id string) ([]models.WorkingWindow, error) {
	return f.providers[id].WorkingWindows, nil
}
func (f *fakeProviderRepo) UpdateWithDocument(id string, updateDoc bson.M) error { return nil }

type fakeClientRepo struct {
	clients map[string]*models.Client
}

func (f *fakeClientRepo) GetByID(id string) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return c, nil
}
func (f *fakeClientRepo) GetByEmail(email string) (*models.Client, error) { return nil, nil }
func (f *fakeClientRepo) Create(c *models.Client) error                   { f.clients[c.ID] = c; return nil }
func (f *fakeClientRepo) Update(c *models.Client) error                   { return nil }
func (f *fakeClientRepo) Delete(id string) error                          { return nil }

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func (f *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return s, nil
}
func (f *fakeServiceRepo) GetAll() ([]models.Service, error) { return nil, nil }
func (f *fakeServiceRepo) Create(s *models.Service) error    { f.services[s.ID] = s; return nil }
func (f *fakeServiceRepo) Update(s *models.Service) error    { return nil }
func (f *fakeServiceRepo) Delete(id string) error            { return nil }

// fakeReservationRepo tracks reservations in memory and moves the provider
// counter the way the Mongo transaction does. Like the real store,
// CreateWithCounter re-checks occupancy itself; reportVacant forces the
// advisory ExistsAt read to miss so tests can model a request racing past it.
type fakeReservationRepo struct {
	byID          map[string]*models.Reservation
	counters      map[string]int
	existsAtCalls int
	reportVacant  bool
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{
		byID:     make(map[string]*models.Reservation),
		counters: make(map[string]int),
	}
}

func (f *fakeReservationRepo) GetByID(id string) (*models.Reservation, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReservationRepo) ListByClient(clientID string) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.byID {
		if r.ClientID == clientID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) ExistsAt(providerID string, ts time.Time) (bool, error) {
	f.existsAtCalls++
	if f.reportVacant {
		return false, nil
	}
	for _, r := range f.byID {
		if r.ProviderID == providerID && r.Timestamp.Equal(ts.UTC()) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReservationRepo) CreateWithCounter(ctx context.Context, r *models.Reservation, incrementProvider bool) error {
	for _, existing := range f.byID {
		if existing.ProviderID == r.ProviderID && existing.Timestamp.Equal(r.Timestamp) {
			return reservationRepo.ErrSlotTaken
		}
	}
	cp := *r
	f.byID[r.ID] = &cp
	if incrementProvider {
		f.counters[r.ProviderID]++
	}
	return nil
}

func (f *fakeReservationRepo) Update(r *models.Reservation) error {
	if _, ok := f.byID[r.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	cp := *r
	f.byID[r.ID] = &cp
	return nil
}

func newTestService() (*DefaultReservationService, *fakeReservationRepo, *fakeProviderRepo) {
	provRepo := &fakeProviderRepo{providers: map[string]*models.Provider{
		"prov-1": {ID: "prov-1", Name: "Ana"},
		"prov-2": {ID: "prov-2", Name: "Bruno", WorkingWindows: []models.WorkingWindow{
			{Weekday: 0, Start: "09:00", End: "17:00"},
		}},
	}}
	cliRepo := &fakeClientRepo{clients: map[string]*models.Client{
		"cli-1": {ID: "cli-1", Name: "Carla"},
	}}
	svcRepo := &fakeServiceRepo{services: map[string]*models.Service{
		"svc-1": {ID: "svc-1", Name: "Haircut", DurationMinutes: 30},
	}}
	resRepo := newFakeReservationRepo()
	return &DefaultReservationService{
		Repo:         resRepo,
		ProviderRepo: provRepo,
		ClientRepo:   cliRepo,
		ServiceRepo:  svcRepo,
	}, resRepo, provRepo
}

func admissionCode(t *testing.T, err error) string {
	t.Helper()
	var ae *AdmissionError
	if !errors.As(err, &ae) {
		t.Fatalf("expected AdmissionError, got %v", err)
	}
	return ae.Code
}

// A Friday; prov-2's window is Monday 09:00-17:00.
var friday = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

// A Monday at 10:00, inside prov-2's declared window.
var monday = time.Date(2024, 3, 18, 10, 0, 0, 0, time.UTC)

func baseRequest(ts time.Time) BookingRequest {
	return BookingRequest{
		ProviderID: "prov-1",
		ClientID:   "cli-1",
		ServiceID:  "svc-1",
		Timestamp:  ts,
	}
}

func TestCreateConfirmedIncrementsCounter(t *testing.T) {
	svc, resRepo, _ := newTestService()

	result, err := svc.Create(context.Background(), baseRequest(friday))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if result.Reservation.Status != models.StatusConfirmed {
		t.Fatalf("expected default status confirmed, got %q", result.Reservation.Status)
	}
	if !result.CounterIncremented {
		t.Fatalf("expected counter to be incremented")
	}
	if got := resRepo.counters["prov-1"]; got != 1 {
		t.Fatalf("expected provider counter 1, got %d", got)
	}
}

func TestCreateCancelledDoesNotIncrementCounter(t *testing.T) {
	svc, resRepo, _ := newTestService()

	req := baseRequest(friday)
	req.Status = models.StatusCancelled
	result, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if result.CounterIncremented {
		t.Fatalf("cancelled reservation must not move the counter")
	}
	if got := resRepo.counters["prov-1"]; got != 0 {
		t.Fatalf("expected provider counter 0, got %d", got)
	}
}

func TestCreateRejectsInvalidStatus(t *testing.T) {
	svc, _, _ := newTestService()

	req := baseRequest(friday)
	req.Status = "tentative"
	_, err := svc.Create(context.Background(), req)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateMissingFields(t *testing.T) {
	svc, _, _ := newTestService()

	req := baseRequest(friday)
	req.ProviderID = ""
	_, err := svc.Create(context.Background(), req)
	if code := admissionCode(t, err); code != CodeMissingRequiredFields {
		t.Fatalf("expected %s, got %s", CodeMissingRequiredFields, code)
	}

	req = baseRequest(time.Time{})
	_, err = svc.Create(context.Background(), req)
	if code := admissionCode(t, err); code != CodeMissingRequiredFields {
		t.Fatalf("expected %s, got %s", CodeMissingRequiredFields, code)
	}
}

func TestCreateRejectsInsideWorkingWindow(t *testing.T) {
	svc, _, _ := newTestService()

	req := baseRequest(monday)
	req.ProviderID = "prov-2"
	_, err := svc.Create(context.Background(), req)
	if code := admissionCode(t, err); code != CodeProviderUnavailable {
		t.Fatalf("expected %s, got %s", CodeProviderUnavailable, code)
	}
}

func TestCreateAcceptsOutsideWorkingWindow(t *testing.T) {
	svc, _, _ := newTestService()

	// Same provider, same clock time, but a Friday: no window covers it.
	req := baseRequest(friday)
	req.ProviderID = "prov-2"
	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
}

func TestWindowBoundsAreInclusive(t *testing.T) {
	svc, _, _ := newTestService()

	for _, tc := range []struct {
		name string
		ts   time.Time
	}{
		{"window start", time.Date(2024, 3, 18, 9, 0, 0, 0, time.UTC)},
		{"window end", time.Date(2024, 3, 18, 17, 0, 0, 0, time.UTC)},
	} {
		req := baseRequest(tc.ts)
		req.ProviderID = "prov-2"
		_, err := svc.Create(context.Background(), req)
		if code := admissionCode(t, err); code != CodeProviderUnavailable {
			t.Fatalf("%s: expected %s, got %s", tc.name, CodeProviderUnavailable, code)
		}
	}
}

func TestCreateDuplicateSlot(t *testing.T) {
	svc, resRepo, _ := newTestService()

	if _, err := svc.Create(context.Background(), baseRequest(friday)); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := svc.Create(context.Background(), baseRequest(friday))
	if code := admissionCode(t, err); code != CodeDuplicateSlot {
		t.Fatalf("expected %s, got %s", CodeDuplicateSlot, code)
	}
	if got := resRepo.counters["prov-1"]; got != 1 {
		t.Fatalf("rejected booking must not move the counter; got %d", got)
	}
}

func TestCreateRaceLosesInsideTransaction(t *testing.T) {
	svc, resRepo, _ := newTestService()

	if _, err := svc.Create(context.Background(), baseRequest(friday)); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	// Model a second request that read "no conflict" before the first one
	// committed: the advisory check misses, but the store transaction still
	// rejects the occupied instant.
	resRepo.reportVacant = true
	_, err := svc.Create(context.Background(), baseRequest(friday))
	if code := admissionCode(t, err); code != CodeDuplicateSlot {
		t.Fatalf("expected %s, got %s", CodeDuplicateSlot, code)
	}
	if got := len(resRepo.byID); got != 1 {
		t.Fatalf("expected a single committed reservation, got %d", got)
	}
	if got := resRepo.counters["prov-1"]; got != 1 {
		t.Fatalf("losing request must not move the counter; got %d", got)
	}
}

func TestSubMillisecondInstantsShareSlot(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.Create(context.Background(), baseRequest(friday)); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	// 500µs later lands on the same stored millisecond.
	_, err := svc.Create(context.Background(), baseRequest(friday.Add(500*time.Microsecond)))
	if code := admissionCode(t, err); code != CodeDuplicateSlot {
		t.Fatalf("expected %s, got %s", CodeDuplicateSlot, code)
	}
}

func TestDuplicateCheckIgnoresStatus(t *testing.T) {
	svc, _, _ := newTestService()

	req := baseRequest(friday)
	req.Status = models.StatusCancelled
	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	// The cancelled reservation still occupies the instant.
	_, err := svc.Create(context.Background(), baseRequest(friday))
	if code := admissionCode(t, err); code != CodeDuplicateSlot {
		t.Fatalf("expected %s, got %s", CodeDuplicateSlot, code)
	}
}

func TestCreateUnknownProvider(t *testing.T) {
	svc, _, _ := newTestService()

	req := baseRequest(friday)
	req.ProviderID = "prov-missing"
	_, err := svc.Create(context.Background(), req)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestUpdateNotesSkipsReadmission(t *testing.T) {
	svc, resRepo, _ := newTestService()

	result, err := svc.Create(context.Background(), baseRequest(friday))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	callsAfterCreate := resRepo.existsAtCalls

	notes := "bring own towel"
	updated, err := svc.Update(context.Background(), result.Reservation.ID, BookingUpdate{Notes: &notes})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Notes != notes {
		t.Fatalf("notes not applied: %q", updated.Notes)
	}
	if resRepo.existsAtCalls != callsAfterCreate {
		t.Fatalf("notes-only update must not re-run admission")
	}
	if got := resRepo.counters["prov-1"]; got != 1 {
		t.Fatalf("update must not move the counter; got %d", got)
	}
}

func TestUpdateStatusNeverMovesCounter(t *testing.T) {
	svc, resRepo, _ := newTestService()

	req := baseRequest(friday)
	req.Status = models.StatusCancelled
	result, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Flipping a cancelled reservation to confirmed is not a creation.
	if _, err := svc.Update(context.Background(), result.Reservation.ID, BookingUpdate{Status: models.StatusConfirmed}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got := resRepo.counters["prov-1"]; got != 0 {
		t.Fatalf("status update must not move the counter; got %d", got)
	}
}

func TestUpdateTimestampRerunsAdmission(t *testing.T) {
	svc, _, _ := newTestService()

	first, err := svc.Create(context.Background(), baseRequest(friday))
	if err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	other := baseRequest(friday.Add(time.Hour))
	second, err := svc.Create(context.Background(), other)
	if err != nil {
		t.Fatalf("second Create failed: %v", err)
	}

	// Moving the second reservation onto the first one's instant must fail.
	_, err = svc.Update(context.Background(), second.Reservation.ID, BookingUpdate{Timestamp: first.Reservation.Timestamp})
	if code := admissionCode(t, err); code != CodeDuplicateSlot {
		t.Fatalf("expected %s, got %s", CodeDuplicateSlot, code)
	}
}

func TestCancelKeepsCounter(t *testing.T) {
	svc, resRepo, _ := newTestService()

	result, err := svc.Create(context.Background(), baseRequest(friday))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	cancelled, err := svc.Cancel(context.Background(), result.Reservation.ID)
	if err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if cancelled.Status != models.StatusCancelled {
		t.Fatalf("expected cancelled status, got %q", cancelled.Status)
	}
	if got := resRepo.counters["prov-1"]; got != 1 {
		t.Fatalf("cancel must not roll back the counter; got %d", got)
	}
}

func TestUpdateUnknownReservation(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Update(context.Background(), "missing", BookingUpdate{Status: models.StatusCompleted})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
