package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jaba-landing/forms"
	"github.com/jaba-landing/models"
	"github.com/jaba-landing/notify"
	"github.com/jaba-landing/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeStore records inserts and answers with a scripted result
type fakeStore struct {
	mu      sync.Mutex
	records []models.Registration
	err     error
	panicV  any
}

func (f *fakeStore) Insert(ctx context.Context, record models.Registration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, record)
	if f.panicV != nil {
		panic(f.panicV)
	}
	return f.err
}

func (f *fakeStore) calls() []models.Registration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Registration(nil), f.records...)
}

func fillFarmer(t *testing.T, form forms.Form) {
	t.Helper()
	for name, v := range map[string]string{
		"name":            "Ada",
		"email":           "ada@example.com",
		"phone":           "+2348000000000",
		"location":        "Lagos",
		"primaryProducts": "Yams",
	} {
		require.NoError(t, form.SetField(name, v))
	}
}

func newService(t *testing.T, form forms.Form, s store.Inserter) (*SubmissionService, *notify.Queue) {
	t.Helper()
	queue := notify.NewQueue(10)
	svc := NewSubmissionService(form, s, queue, WithLogger(zaptest.NewLogger(t)))
	return svc, queue
}

func TestSubmit_FarmerScenario(t *testing.T) {
	form := forms.NewFarmerForm()
	fillFarmer(t, form)
	fake := &fakeStore{}
	svc, queue := newService(t, form, fake)

	outcome, err := svc.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, outcome)

	calls := fake.calls()
	require.Len(t, calls, 1)
	want := &models.FarmerRegistration{
		Name:            "Ada",
		Email:           "ada@example.com",
		Phone:           "+2348000000000",
		Location:        "Lagos",
		PrimaryProducts: "Yams",
	}
	if diff := cmp.Diff(want, calls[0]); diff != "" {
		t.Errorf("inserted record mismatch (-want +got):\n%s", diff)
	}

	sent := queue.Drain()
	require.Len(t, sent, 1)
	assert.Equal(t, notify.VariantDefault, sent[0].Variant)
	assert.Equal(t, "Thank you for joining!", sent[0].Title)

	for _, f := range form.Fields() {
		assert.Empty(t, form.Snapshot().Get(f.Name), f.Name)
	}
	assert.False(t, svc.Disabled())
}

func TestSubmit_BuyerSuccessResetsSet(t *testing.T) {
	form := forms.NewBuyerForm()
	for name, v := range map[string]string{"name": "Bola", "email": "b@example.com", "phone": "1", "location": "Abuja"} {
		require.NoError(t, form.SetField(name, v))
	}
	require.NoError(t, form.ToggleSetMember("preferredProducts", "Fish"))
	svc, queue := newService(t, form, &fakeStore{})

	outcome, err := svc.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, outcome)
	assert.Empty(t, form.Input().PreferredProducts)
	assert.Equal(t, "Welcome to Jaba!", queue.Drain()[0].Title)
}

func TestSubmit_DuplicateKeepsFields(t *testing.T) {
	form := forms.NewFarmerForm()
	fillFarmer(t, form)
	before := form.Snapshot()
	fake := &fakeStore{err: &store.Error{Table: "farmers", Code: store.UniqueViolation, Message: "duplicate key value"}}
	svc, queue := newService(t, form, fake)

	outcome, err := svc.Submit(context.Background())
	assert.Equal(t, OutcomeDuplicate, outcome)
	assert.True(t, store.IsUniqueViolation(err))

	sent := queue.Drain()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Title+" "+sent[0].Description, "already registered")
	assert.True(t, sent[0].Destructive())

	if diff := cmp.Diff(before, form.Snapshot()); diff != "" {
		t.Errorf("form changed after duplicate (-before +after):\n%s", diff)
	}
	assert.False(t, svc.Disabled())
}

func TestSubmit_FailureKindsShareGenericMessage(t *testing.T) {
	cases := []struct {
		name    string
		store   *fakeStore
		outcome Outcome
	}{
		{"reported", &fakeStore{err: &store.Error{Code: "23502", Message: "null value"}}, OutcomeFailed},
		{"transport", &fakeStore{err: errors.New("connection refused")}, OutcomeUnexpected},
		{"panic", &fakeStore{panicV: "boom"}, OutcomeUnexpected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := forms.NewFarmerForm()
			fillFarmer(t, form)
			before := form.Snapshot()
			svc, queue := newService(t, form, tc.store)

			outcome, err := svc.Submit(context.Background())
			assert.Equal(t, tc.outcome, outcome)
			assert.Error(t, err)

			sent := queue.Drain()
			require.Len(t, sent, 1)
			assert.Equal(t, "Registration failed", sent[0].Title)
			assert.Equal(t, before, form.Snapshot())
			assert.False(t, svc.Disabled())
		})
	}
}

func TestSubmit_PanicIsWrapped(t *testing.T) {
	form := forms.NewFarmerForm()
	fillFarmer(t, form)
	svc, _ := newService(t, form, &fakeStore{panicV: "boom"})

	_, err := svc.Submit(context.Background())
	assert.ErrorIs(t, err, ErrStorePanic)
}

func TestSubmit_InvalidSkipsInsert(t *testing.T) {
	form := forms.NewFarmerForm()
	require.NoError(t, form.SetField("name", "Ada"))
	fake := &fakeStore{}
	svc, queue := newService(t, form, fake)

	outcome, err := svc.Submit(context.Background())
	assert.Equal(t, OutcomeInvalid, outcome)
	assert.ErrorIs(t, err, models.ErrMissingField)
	assert.Empty(t, fake.calls())
	assert.Len(t, queue.Drain(), 1)
	assert.Equal(t, "Ada", form.Input().Name)
}

func TestSubmit_DisabledWhileInFlight(t *testing.T) {
	for _, result := range []error{nil, errors.New("connection reset")} {
		form := forms.NewFarmerForm()
		fillFarmer(t, form)

		entered := make(chan struct{})
		release := make(chan struct{})
		blocking := store.InserterFunc(func(ctx context.Context, record models.Registration) error {
			close(entered)
			<-release
			return result
		})
		svc, queue := newService(t, form, blocking)

		done := make(chan Outcome)
		go func() {
			outcome, _ := svc.Submit(context.Background())
			done <- outcome
		}()

		<-entered
		assert.True(t, svc.Disabled())

		outcome, err := svc.Submit(context.Background())
		assert.Equal(t, OutcomeRejected, outcome)
		assert.ErrorIs(t, err, ErrSubmitInProgress)

		close(release)
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("submission did not finish")
		}
		assert.False(t, svc.Disabled())
		assert.Len(t, queue.Drain(), 1, "rejected attempt must not notify")
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, OutcomeSuccess, Classify(nil))
	assert.Equal(t, OutcomeDuplicate, Classify(&store.Error{Code: "23505"}))
	assert.Equal(t, OutcomeFailed, Classify(&store.Error{Code: "42501"}))
	assert.Equal(t, OutcomeUnexpected, Classify(store.ErrTransport))
}

func TestWithCatalog(t *testing.T) {
	form := forms.NewFarmerForm()
	fillFarmer(t, form)
	queue := notify.NewQueue(1)
	svc := NewSubmissionService(form, &fakeStore{}, queue, WithCatalog(notify.Catalog{Duration: 2 * time.Second}))

	_, err := svc.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, queue.Drain()[0].Duration)
}

func TestSubmit_SharedInFlightAcrossForms(t *testing.T) {
	inFlight := NewInFlight()
	entered := make(chan struct{})
	release := make(chan struct{})
	st := &fakeStore{}
	blocking := store.InserterFunc(func(ctx context.Context, record models.Registration) error {
		close(entered)
		<-release
		return st.Insert(ctx, record)
	})

	first := forms.NewFarmerForm()
	fillFarmer(t, first)
	firstSvc := NewSubmissionService(first, blocking, notify.NewQueue(1), WithInFlight(inFlight))

	done := make(chan Outcome)
	go func() {
		outcome, _ := firstSvc.Submit(context.Background())
		done <- outcome
	}()
	<-entered

	second := forms.NewFarmerForm()
	fillFarmer(t, second)
	require.NoError(t, second.SetField("email", " ADA@example.com "))
	queue := notify.NewQueue(1)
	secondSvc := NewSubmissionService(second, blocking, queue, WithInFlight(inFlight))
	assert.True(t, secondSvc.Disabled())

	outcome, err := secondSvc.Submit(context.Background())
	assert.Equal(t, OutcomeRejected, outcome)
	assert.ErrorIs(t, err, ErrSubmitInProgress)
	assert.Zero(t, queue.Len())

	close(release)
	select {
	case got := <-done:
		assert.Equal(t, OutcomeSuccess, got)
	case <-time.After(5 * time.Second):
		t.Fatal("submission did not finish")
	}
	assert.Len(t, st.calls(), 1)
	assert.False(t, inFlight.Held(models.RoleFarmer, "ada@example.com"))
	assert.False(t, secondSvc.Disabled())
}

func TestInFlight_KeysByRoleAndEmail(t *testing.T) {
	f := NewInFlight()
	require.True(t, f.Acquire(models.RoleFarmer, "ada@example.com"))
	assert.False(t, f.Acquire(models.RoleFarmer, "Ada@Example.com"))
	assert.True(t, f.Acquire(models.RoleBuyer, "ada@example.com"))

	f.Release(models.RoleFarmer, "ada@example.com")
	assert.False(t, f.Held(models.RoleFarmer, "ada@example.com"))
	assert.True(t, f.Held(models.RoleBuyer, "ada@example.com"))
}
