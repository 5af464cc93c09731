package debt_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tranqh/moneypot/internal/debt"
)

func TestService_Create(t *testing.T) {
	validParams := debt.CreateParams{
		Counterparty: "Ngan",
		Side:         debt.SidePayable,
		Principal:    1_000_000,
		InterestRate: 10,
		TermMonths:   12,
		StartDate:    date(2024, 1, 1),
	}

	type testCase struct {
		name      string
		params    debt.CreateParams
		setupMock func(m *debt.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			params: validParams,
			setupMock: func(m *debt.MockRepository) {
				m.EXPECT().
					CreateDebt(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, d *debt.Debt) error {
						d.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "MissingCounterparty",
			params: func() debt.CreateParams {
				p := validParams
				p.Counterparty = ""
				return p
			}(),
			wantErr: debt.ErrValidation,
		},
		{
			name: "UnknownSide",
			params: func() debt.CreateParams {
				p := validParams
				p.Side = "sideways"
				return p
			}(),
			wantErr: debt.ErrValidation,
		},
		{
			name: "NegativePrincipal",
			params: func() debt.CreateParams {
				p := validParams
				p.Principal = -1
				return p
			}(),
			wantErr: debt.ErrValidation,
		},
		{
			name: "MissingStartDate",
			params: func() debt.CreateParams {
				p := validParams
				p.StartDate = time.Time{}
				return p
			}(),
			wantErr: debt.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := debt.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := debt.NewService(repo, debt.StepFixed30)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settled := &debt.Debt{ID: uuid.New(), Principal: 1000, PaidBack: 1000}
	open := &debt.Debt{ID: uuid.New(), Principal: 1000, PaidBack: 200}

	repo := debt.NewMockRepository(ctrl)
	repo.EXPECT().
		ListDebts(gomock.Any()).
		Return([]*debt.Debt{settled, open}, nil).
		Times(2)

	svc := debt.NewService(repo, debt.StepFixed30)

	all, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, open.ID, active[0].ID)
}

func TestService_Update_AllowsOverpayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := &debt.Debt{
		ID:           uuid.New(),
		Counterparty: "Minh",
		Side:         debt.SideReceivable,
		Principal:    1000,
		PaidBack:     1500,
	}

	repo := debt.NewMockRepository(ctrl)
	repo.EXPECT().UpdateDebt(gomock.Any(), d).Return(nil)

	svc := debt.NewService(repo, debt.StepFixed30)
	require.NoError(t, svc.Update(context.Background(), d))
}

func TestService_Schedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	d := &debt.Debt{
		ID:         id,
		Principal:  1_200_000,
		TermMonths: 3,
		StartDate:  date(2024, 1, 1),
	}

	repo := debt.NewMockRepository(ctrl)
	repo.EXPECT().GetDebt(gomock.Any(), id).Return(d, nil)

	// Empty policy falls back to fixed 30-day stepping.
	svc := debt.NewService(repo, "")

	schedule, err := svc.Schedule(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, schedule, 3)
	assert.Equal(t, date(2024, 1, 31), schedule[0].Date)
}

func TestService_Schedule_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := debt.NewMockRepository(ctrl)
	repo.EXPECT().GetDebt(gomock.Any(), gomock.Any()).Return(nil, debt.ErrNotFound)

	svc := debt.NewService(repo, debt.StepFixed30)

	_, err := svc.Schedule(context.Background(), uuid.New())
	assert.ErrorIs(t, err, debt.ErrNotFound)
}

func TestService_Summarize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := debt.NewMockRepository(ctrl)
	repo.EXPECT().
		ListDebts(gomock.Any()).
		Return([]*debt.Debt{
			{Side: debt.SidePayable, Principal: 1000, PaidBack: 400},
			{Side: debt.SidePayable, Principal: 500, PaidBack: 500},
			{Side: debt.SideReceivable, Principal: 2000},
		}, nil)

	svc := debt.NewService(repo, debt.StepFixed30)

	sum, err := svc.Summarize(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 600, sum.Payable, 1e-9)
	assert.InDelta(t, 2000, sum.Receivable, 1e-9)
	assert.InDelta(t, 1400, sum.Net, 1e-9)
}

func TestService_Summarize_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := debt.NewMockRepository(ctrl)
	repo.EXPECT().ListDebts(gomock.Any()).Return(nil, errors.New("db error"))

	svc := debt.NewService(repo, debt.StepFixed30)

	_, err := svc.Summarize(context.Background())
	assert.Error(t, err)
}
