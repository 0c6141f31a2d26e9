package service

import (
	"testing"
	"time"

	"nailstudio/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitReview_Validation(t *testing.T) {
	svc := NewReviewService(nil)

	_, err := svc.SubmitReview("", "great salon", "", 5)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.SubmitReview("Anna", "", "", 5)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.SubmitReview("Anna", "great salon", "", 0)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.SubmitReview("Anna", "great salon", "", 6)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestSubmitReview_StartsUnapproved(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs("Anna", "great salon", 5, sqlmock.AnyArg(), false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(3, time.Now()))

	svc := NewReviewService(repository.NewReviewRepository(mockDB))
	review, err := svc.SubmitReview("Anna", "great salon", "", 5)
	require.NoError(t, err)
	assert.Equal(t, 3, review.ID)
	assert.False(t, review.IsApproved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateReview_RatingBounds(t *testing.T) {
	svc := NewReviewService(nil)

	rating := 9
	err := svc.UpdateReview(3, nil, nil, nil, &rating, nil)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}
