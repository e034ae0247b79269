//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"eatery-api/internal/domain/reservation"
	"eatery-api/internal/infra/kv"
	"eatery-api/internal/infra/repository"
	"eatery-api/internal/pkg/clock"
	"eatery-api/internal/pkg/errs"
	"eatery-api/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type sentNotification struct {
	to      string
	subject string
	message string
	resID   string
}

type recordingNotifier struct {
	sent []sentNotification
}

func (n *recordingNotifier) Notify(_ context.Context, to, subject, message string, res *reservation.Reservation) error {
	entry := sentNotification{to: to, subject: subject, message: message}
	if res != nil {
		entry.resID = res.ID()
	}
	n.sent = append(n.sent, entry)
	return nil
}

type ReservationCommandsSuite struct {
	suite.Suite
	ctx      context.Context
	store    *kv.MemoryStore
	repo     *repository.ReservationRepository
	notifier *recordingNotifier
	clock    *clock.MockClock
	commands commands.ReservationCommands
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsSuite))
}

func (s *ReservationCommandsSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = kv.NewMemoryStore()
	s.repo = repository.NewReservationRepository(s.store)
	s.notifier = &recordingNotifier{}
	s.clock = clock.NewMockClock(time.Date(2024, 7, 1, 18, 30, 0, 0, time.UTC))
	s.commands = commands.NewReservationCommands(s.repo, s.notifier, s.clock)
}

func (s *ReservationCommandsSuite) validInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Phone:  "435-555-0101",
		Date:   "2024-07-04",
		Time:   "17:00",
		Guests: 4,
	}
}

func (s *ReservationCommandsSuite) TestCreateAppendsPendingReservation() {
	view, err := s.commands.Create(s.ctx, s.validInput())
	s.Require().NoError(err)

	s.Assert().Len(view.ID, 26)
	s.Assert().Equal("pending", view.Status)
	s.Assert().Equal(s.clock.Now(), view.CreatedAt)

	records, _, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Assert().Equal(view.ID, records[0].ID())
}

func (s *ReservationCommandsSuite) TestCreatePreservesInsertionOrder() {
	first, err := s.commands.Create(s.ctx, s.validInput())
	s.Require().NoError(err)

	second := s.validInput()
	second.Name = "John Roe"
	secondView, err := s.commands.Create(s.ctx, second)
	s.Require().NoError(err)

	records, _, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Assert().Equal(first.ID, records[0].ID())
	s.Assert().Equal(secondView.ID, records[1].ID())
}

func (s *ReservationCommandsSuite) TestCreateNotifiesWhenEmailOnFile() {
	_, err := s.commands.Create(s.ctx, s.validInput())
	s.Require().NoError(err)

	s.Require().Len(s.notifier.sent, 1)
	s.Assert().Equal("jane@example.com", s.notifier.sent[0].to)
	s.Assert().Equal(commands.SubjectReceived, s.notifier.sent[0].subject)
	s.Assert().Contains(s.notifier.sent[0].message, "Jane Doe")
	s.Assert().Contains(s.notifier.sent[0].message, "5:00 PM")
	s.Assert().Contains(s.notifier.sent[0].message, "The Eating Establishment")
}

func (s *ReservationCommandsSuite) TestCreateSkipsNotificationWithoutEmail() {
	input := s.validInput()
	input.Email = ""
	_, err := s.commands.Create(s.ctx, input)
	s.Require().NoError(err)

	s.Assert().Empty(s.notifier.sent)
}

func (s *ReservationCommandsSuite) TestCreateRejectsInvalidInput() {
	cases := []struct {
		name   string
		mutate func(*commands.CreateReservationInput)
	}{
		{name: "blank name", mutate: func(in *commands.CreateReservationInput) { in.Name = "  " }},
		{name: "blank phone", mutate: func(in *commands.CreateReservationInput) { in.Phone = "" }},
		{name: "bad date", mutate: func(in *commands.CreateReservationInput) { in.Date = "next friday" }},
		{name: "bad time", mutate: func(in *commands.CreateReservationInput) { in.Time = "25:99" }},
		{name: "zero guests", mutate: func(in *commands.CreateReservationInput) { in.Guests = 0 }},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			input := s.validInput()
			tc.mutate(&input)

			_, err := s.commands.Create(s.ctx, input)
			s.Assert().ErrorIs(err, errs.ErrInvalidInput)

			records, _, loadErr := s.repo.Load(s.ctx)
			s.Require().NoError(loadErr)
			s.Assert().Empty(records)
		})
	}
}

func (s *ReservationCommandsSuite) TestUpdateStatusConfirmedNotifies() {
	created, err := s.commands.Create(s.ctx, s.validInput())
	s.Require().NoError(err)
	s.notifier.sent = nil

	view, err := s.commands.UpdateStatus(s.ctx, created.ID, "confirmed")
	s.Require().NoError(err)
	s.Assert().Equal("confirmed", view.Status)

	s.Require().Len(s.notifier.sent, 1)
	s.Assert().Equal(commands.SubjectConfirmed, s.notifier.sent[0].subject)
	s.Assert().Contains(s.notifier.sent[0].message, "pleased to confirm")
}

func (s *ReservationCommandsSuite) TestUpdateStatusCancelledNotifies() {
	created, err := s.commands.Create(s.ctx, s.validInput())
	s.Require().NoError(err)
	s.notifier.sent = nil

	_, err = s.commands.UpdateStatus(s.ctx, created.ID, "cancelled")
	s.Require().NoError(err)

	s.Require().Len(s.notifier.sent, 1)
	s.Assert().Equal(commands.SubjectCancelled, s.notifier.sent[0].subject)
	s.Assert().Contains(s.notifier.sent[0].message, "435.649.8284")
}

func (s *ReservationCommandsSuite) TestUpdateStatusSameValueSkipsNotification() {
	created, err := s.commands.Create(s.ctx, s.validInput())
	s.Require().NoError(err)
	_, err = s.commands.UpdateStatus(s.ctx, created.ID, "confirmed")
	s.Require().NoError(err)
	s.notifier.sent = nil

	view, err := s.commands.UpdateStatus(s.ctx, created.ID, "confirmed")
	s.Require().NoError(err)
	s.Assert().Equal("confirmed", view.Status)
	s.Assert().Empty(s.notifier.sent)
}

func (s *ReservationCommandsSuite) TestUpdateStatusBackToPendingPersistsSilently() {
	created, err := s.commands.Create(s.ctx, s.validInput())
	s.Require().NoError(err)
	_, err = s.commands.UpdateStatus(s.ctx, created.ID, "confirmed")
	s.Require().NoError(err)
	s.notifier.sent = nil

	view, err := s.commands.UpdateStatus(s.ctx, created.ID, "pending")
	s.Require().NoError(err)
	s.Assert().Equal("pending", view.Status)
	s.Assert().Empty(s.notifier.sent)

	records, _, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal("pending", records[0].Status().String())
}

func (s *ReservationCommandsSuite) TestUpdateStatusSkipsNotificationWithoutEmail() {
	input := s.validInput()
	input.Email = ""
	created, err := s.commands.Create(s.ctx, input)
	s.Require().NoError(err)

	_, err = s.commands.UpdateStatus(s.ctx, created.ID, "confirmed")
	s.Require().NoError(err)
	s.Assert().Empty(s.notifier.sent)
}

func (s *ReservationCommandsSuite) TestUpdateStatusUnknownValue() {
	created, err := s.commands.Create(s.ctx, s.validInput())
	s.Require().NoError(err)

	_, err = s.commands.UpdateStatus(s.ctx, created.ID, "archived")
	s.Assert().ErrorIs(err, errs.ErrInvalidStatus)
}

func (s *ReservationCommandsSuite) TestUpdateStatusMissingReservation() {
	_, err := s.commands.UpdateStatus(s.ctx, "no-such-id", "confirmed")
	s.Assert().ErrorIs(err, errs.ErrReservationNotFound)
}

func (s *ReservationCommandsSuite) TestDeleteRemovesAndNotifies() {
	created, err := s.commands.Create(s.ctx, s.validInput())
	s.Require().NoError(err)
	s.notifier.sent = nil

	removed, err := s.commands.Delete(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Assert().True(removed)

	records, _, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Assert().Empty(records)

	s.Require().Len(s.notifier.sent, 1)
	s.Assert().Equal(commands.SubjectCancelled, s.notifier.sent[0].subject)
	s.Assert().Contains(s.notifier.sent[0].message, "has been cancelled")
	s.Assert().Equal(created.ID, s.notifier.sent[0].resID)
}

func (s *ReservationCommandsSuite) TestDeleteMissPerformsNoWrite() {
	created, err := s.commands.Create(s.ctx, s.validInput())
	s.Require().NoError(err)
	s.notifier.sent = nil

	removed, err := s.commands.Delete(s.ctx, "no-such-id")
	s.Require().NoError(err)
	s.Assert().False(removed)
	s.Assert().Empty(s.notifier.sent)

	records, _, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Assert().Equal(created.ID, records[0].ID())
}

func (s *ReservationCommandsSuite) TestCorruptStoredStateSurfacesHardFailure() {
	require.NoError(s.T(), s.store.Put(s.ctx, repository.ReservationsKey, []byte("weird bytes")))

	_, err := s.commands.Create(s.ctx, s.validInput())
	assert.ErrorIs(s.T(), err, errs.ErrCorruptedState)
}

func (s *ReservationCommandsSuite) TestConcurrentCreateConflict() {
	// A writer that sneaks in between Load and Store makes the stale write
	// surface as a conflict instead of silently dropping the other record.
	conflicting := commands.NewReservationCommands(
		&interposingRepo{inner: s.repo, store: s.store},
		s.notifier,
		s.clock,
	)

	_, err := conflicting.Create(s.ctx, s.validInput())
	s.Assert().ErrorIs(err, errs.ErrStoreConflict)
}

// interposingRepo writes a competing value after every Load, simulating a
// second process racing on the same collection key.
type interposingRepo struct {
	inner *repository.ReservationRepository
	store *kv.MemoryStore
}

func (r *interposingRepo) Load(ctx context.Context) ([]*reservation.Reservation, []byte, error) {
	records, snapshot, err := r.inner.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := r.store.Put(ctx, repository.ReservationsKey, []byte(`[]`)); err != nil {
		return nil, nil, err
	}
	return records, snapshot, nil
}

func (r *interposingRepo) Store(ctx context.Context, snapshot []byte, records []*reservation.Reservation) error {
	return r.inner.Store(ctx, snapshot, records)
}
