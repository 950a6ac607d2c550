package domain

import (
	"context"
	"strings"
	"testing"

	"calendar-assistant/internal/entities"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func noopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func TestUsecase_CreateEmployeeValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.CreateEmployee(context.Background(), "  ")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.CreateEmployee(context.Background(), strings.Repeat("ж", 101))
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "CreateEmployee", mock.Anything, mock.Anything)
}

func TestUsecase_CreateEmployeeTrimsName(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("CreateEmployee", mock.Anything, entities.Employee{Name: strings.Repeat("ж", 100)}).
		Return(&entities.Employee{ID: 3, Name: strings.Repeat("ж", 100)}, nil)

	got, err := uc.CreateEmployee(context.Background(), " "+strings.Repeat("ж", 100)+" ")
	require.NoError(t, err)
	require.Equal(t, int64(3), got.ID)
	repo.AssertExpectations(t)
}

func TestUsecase_DeleteEmployeeRemovesMeetingsFirst(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	var order []string
	repo.On("DeleteMeetingsByEmployee", mock.Anything, int64(4)).
		Run(func(mock.Arguments) { order = append(order, "meetings") }).
		Return(int64(2), nil)
	repo.On("DeleteEmployee", mock.Anything, int64(4)).
		Run(func(mock.Arguments) { order = append(order, "employee") }).
		Return(nil)

	require.NoError(t, uc.DeleteEmployee(context.Background(), 4))
	require.Equal(t, []string{"meetings", "employee"}, order)
}

func TestUsecase_DeleteEmployeeNotFound(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("DeleteMeetingsByEmployee", mock.Anything, int64(4)).Return(int64(0), nil)
	repo.On("DeleteEmployee", mock.Anything, int64(4)).Return(entities.ErrEmployeeNotFound)

	require.ErrorIs(t, uc.DeleteEmployee(context.Background(), 4), entities.ErrEmployeeNotFound)
}

func TestUsecase_SearchEmployeesDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("SearchEmployees", mock.Anything, "ann").Return([]entities.Employee{{ID: 1, Name: "Anna"}}, nil)

	got, err := uc.SearchEmployees(context.Background(), " ann ")
	require.NoError(t, err)
	require.Len(t, got, 1)
}
