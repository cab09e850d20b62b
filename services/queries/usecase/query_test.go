package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/loanhub/internal/pkg/models"
	"github.com/piresc/loanhub/services/queries/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

var (
	customer = models.Identity{UserID: uuid.New(), Role: models.RoleCustomer}
	employee = models.Identity{UserID: uuid.New(), Role: models.RoleEmployee}
	admin    = models.Identity{UserID: uuid.New(), Role: models.RoleAdmin}
)

func setupQueryUC(t *testing.T, strict bool) (*QueryUC, *mocks.MockQueryRepo, *mocks.MockQueryGW) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockQueryRepo(ctrl)
	mockGW := mocks.NewMockQueryGW(ctrl)

	cfg := &models.Config{Queries: models.QueriesConfig{StrictResponses: strict}}
	uc := NewQueryUC(mockRepo, mockGW, cfg)
	uc.now = func() time.Time { return testNow }
	return uc, mockRepo, mockGW
}

func strPtr(s string) *string { return &s }

func TestSubmit(t *testing.T) {
	other := uuid.New()

	tests := []struct {
		name      string
		caller    models.Identity
		req       models.SubmitQueryRequest
		mockSetup func(repo *mocks.MockQueryRepo)
		wantOwner uuid.UUID
		wantErr   error
	}{
		{
			name:   "Customer submits",
			caller: customer,
			req:    models.SubmitQueryRequest{Query: " need info "},
			mockSetup: func(repo *mocks.MockQueryRepo) {
				repo.EXPECT().CreateQuery(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantOwner: customer.UserID,
		},
		{
			name:   "Body userId ignored for customers",
			caller: customer,
			req:    models.SubmitQueryRequest{UserID: other.String(), Query: "need info"},
			mockSetup: func(repo *mocks.MockQueryRepo) {
				repo.EXPECT().CreateQuery(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantOwner: customer.UserID,
		},
		{
			name:   "Admin submits for a user",
			caller: admin,
			req:    models.SubmitQueryRequest{UserID: other.String(), Query: "need info"},
			mockSetup: func(repo *mocks.MockQueryRepo) {
				repo.EXPECT().CreateQuery(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantOwner: other,
		},
		{
			name:      "Empty query",
			caller:    customer,
			req:       models.SubmitQueryRequest{Query: "   "},
			mockSetup: func(repo *mocks.MockQueryRepo) {},
			wantErr:   models.ErrValidation,
		},
		{
			name:   "Unknown owner",
			caller: admin,
			req:    models.SubmitQueryRequest{UserID: other.String(), Query: "need info"},
			mockSetup: func(repo *mocks.MockQueryRepo) {
				repo.EXPECT().CreateQuery(gomock.Any(), gomock.Any()).Return(models.ErrUserNotFound)
			},
			wantErr: models.ErrUserNotFound,
		},
		{
			name:   "Store failure",
			caller: customer,
			req:    models.SubmitQueryRequest{Query: "need info"},
			mockSetup: func(repo *mocks.MockQueryRepo) {
				repo.EXPECT().CreateQuery(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantErr: errors.New("failed to create query: connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, _ := setupQueryUC(t, false)
			tt.mockSetup(repo)

			query, err := uc.Submit(context.Background(), tt.caller, &tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(err, tt.wantErr) {
					return
				}
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, query.UserID)
			assert.Equal(t, "need info", query.Query)
			assert.Nil(t, query.Response)
			assert.Equal(t, testNow, query.CreatedAt)
		})
	}
}

func TestRespond(t *testing.T) {
	queryID := uuid.New()
	owner := uuid.New()

	tests := []struct {
		name      string
		strict    bool
		response  string
		mockSetup func(repo *mocks.MockQueryRepo, gw *mocks.MockQueryGW)
		wantErr   error
	}{
		{
			name:     "First response",
			response: "see FAQ",
			mockSetup: func(repo *mocks.MockQueryRepo, gw *mocks.MockQueryGW) {
				repo.EXPECT().GetQueryByID(gomock.Any(), queryID).
					Return(&models.Query{ID: queryID, UserID: owner, Query: "need info"}, nil)
				repo.EXPECT().UpdateResponse(gomock.Any(), queryID, "see FAQ", false).Return(true, nil)
				gw.EXPECT().PublishQueryResponded(gomock.Any(), &models.QueryRespondedEvent{
					QueryID:     queryID,
					UserID:      owner,
					Query:       "need info",
					Response:    "see FAQ",
					RespondedBy: employee.UserID,
					RespondedAt: testNow,
				}).Return(nil)
			},
		},
		{
			name:     "Second response replaces the first",
			response: "call us",
			mockSetup: func(repo *mocks.MockQueryRepo, gw *mocks.MockQueryGW) {
				repo.EXPECT().GetQueryByID(gomock.Any(), queryID).
					Return(&models.Query{ID: queryID, UserID: owner, Response: strPtr("see FAQ")}, nil)
				repo.EXPECT().UpdateResponse(gomock.Any(), queryID, "call us", false).Return(true, nil)
				gw.EXPECT().PublishQueryResponded(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "Strict rejects a second response",
			strict:   true,
			response: "call us",
			mockSetup: func(repo *mocks.MockQueryRepo, gw *mocks.MockQueryGW) {
				repo.EXPECT().GetQueryByID(gomock.Any(), queryID).
					Return(&models.Query{ID: queryID, Response: strPtr("see FAQ")}, nil)
			},
			wantErr: models.ErrAlreadyResponded,
		},
		{
			name:     "Strict loses a race",
			strict:   true,
			response: "see FAQ",
			mockSetup: func(repo *mocks.MockQueryRepo, gw *mocks.MockQueryGW) {
				repo.EXPECT().GetQueryByID(gomock.Any(), queryID).Return(&models.Query{ID: queryID}, nil)
				repo.EXPECT().UpdateResponse(gomock.Any(), queryID, "see FAQ", true).Return(false, nil)
			},
			wantErr: models.ErrAlreadyResponded,
		},
		{
			name:      "Blank response",
			response:  "  ",
			mockSetup: func(repo *mocks.MockQueryRepo, gw *mocks.MockQueryGW) {},
			wantErr:   models.ErrEmptyResponse,
		},
		{
			name:     "Query not found",
			response: "see FAQ",
			mockSetup: func(repo *mocks.MockQueryRepo, gw *mocks.MockQueryGW) {
				repo.EXPECT().GetQueryByID(gomock.Any(), queryID).Return(nil, models.ErrQueryNotFound)
			},
			wantErr: models.ErrQueryNotFound,
		},
		{
			name:     "Deleted before update",
			response: "see FAQ",
			mockSetup: func(repo *mocks.MockQueryRepo, gw *mocks.MockQueryGW) {
				repo.EXPECT().GetQueryByID(gomock.Any(), queryID).Return(&models.Query{ID: queryID}, nil)
				repo.EXPECT().UpdateResponse(gomock.Any(), queryID, "see FAQ", false).Return(false, nil)
			},
			wantErr: models.ErrQueryNotFound,
		},
		{
			name:     "Publish failure does not fail the response",
			response: "see FAQ",
			mockSetup: func(repo *mocks.MockQueryRepo, gw *mocks.MockQueryGW) {
				repo.EXPECT().GetQueryByID(gomock.Any(), queryID).Return(&models.Query{ID: queryID}, nil)
				repo.EXPECT().UpdateResponse(gomock.Any(), queryID, "see FAQ", false).Return(true, nil)
				gw.EXPECT().PublishQueryResponded(gomock.Any(), gomock.Any()).Return(errors.New("nsqd unreachable"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, gw := setupQueryUC(t, tt.strict)
			tt.mockSetup(repo, gw)

			query, err := uc.Respond(context.Background(), employee, queryID, tt.response)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, query)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, query.Response)
			assert.Equal(t, tt.response, *query.Response)
		})
	}
}

func TestListAll(t *testing.T) {
	uc, repo, _ := setupQueryUC(t, false)

	want := []*models.Query{{ID: uuid.New(), Query: "need info"}}
	repo.EXPECT().ListQueries(gomock.Any()).Return(want, nil)

	got, err := uc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	repo.EXPECT().ListQueries(gomock.Any()).Return(nil, errors.New("timeout"))
	_, err = uc.ListAll(context.Background())
	assert.EqualError(t, err, "failed to list queries: timeout")
}

// memoryQueries keeps queries in a map so the flow can be checked end to end
type memoryQueries struct {
	byID map[uuid.UUID]*models.Query
}

func (m *memoryQueries) CreateQuery(ctx context.Context, query *models.Query) error {
	stored := *query
	m.byID[query.ID] = &stored
	return nil
}

func (m *memoryQueries) GetQueryByID(ctx context.Context, id uuid.UUID) (*models.Query, error) {
	q, ok := m.byID[id]
	if !ok {
		return nil, models.ErrQueryNotFound
	}
	copied := *q
	return &copied, nil
}

func (m *memoryQueries) ListQueries(ctx context.Context) ([]*models.Query, error) {
	list := make([]*models.Query, 0, len(m.byID))
	for _, q := range m.byID {
		copied := *q
		list = append(list, &copied)
	}
	return list, nil
}

func (m *memoryQueries) UpdateResponse(ctx context.Context, id uuid.UUID, response string, onlyUnanswered bool) (bool, error) {
	q, ok := m.byID[id]
	if !ok || (onlyUnanswered && q.Response != nil) {
		return false, nil
	}
	q.Response = &response
	return true, nil
}

type discardGW struct{}

func (discardGW) PublishQueryResponded(ctx context.Context, event *models.QueryRespondedEvent) error {
	return nil
}

func TestQueryFlow(t *testing.T) {
	repo := &memoryQueries{byID: map[uuid.UUID]*models.Query{}}
	uc := NewQueryUC(repo, discardGW{}, &models.Config{})
	ctx := context.Background()

	submitted, err := uc.Submit(ctx, customer, &models.SubmitQueryRequest{Query: "need info"})
	require.NoError(t, err)

	list, err := uc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Response)

	_, err = uc.Respond(ctx, employee, submitted.ID, "see FAQ")
	require.NoError(t, err)

	list, err = uc.ListAll(ctx)
	require.NoError(t, err)
	require.NotNil(t, list[0].Response)
	assert.Equal(t, "see FAQ", *list[0].Response)
}
