package dbhelper

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/tastybites/tastybites/models"
)

const paymentSelect = `SELECT paid, total FROM orders WHERE id = \$1 FOR UPDATE`

func TestRecordPayment(t *testing.T) {
	mock := setupMock(t)

	orderID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(paymentSelect).
		WithArgs(orderID).
		WillReturnRows(sqlmock.NewRows([]string{"paid", "total"}).AddRow(false, 250))
	mock.ExpectExec(`UPDATE orders SET paid = TRUE, status = \$1 WHERE id = \$2`).
		WithArgs(models.StatusPaid, orderID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO payments \(order_id, amount\) VALUES \(\$1, \$2\)`).
		WithArgs(orderID, 250).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	assert.NoError(t, RecordPayment(orderID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPaymentAlreadyPaid(t *testing.T) {
	mock := setupMock(t)

	orderID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(paymentSelect).
		WithArgs(orderID).
		WillReturnRows(sqlmock.NewRows([]string{"paid", "total"}).AddRow(true, 250))
	mock.ExpectRollback()

	err := RecordPayment(orderID)
	assert.ErrorIs(t, err, models.ErrAlreadyPaid)
	// no second payment row was inserted
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPaymentOrderMissing(t *testing.T) {
	mock := setupMock(t)

	orderID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(paymentSelect).
		WithArgs(orderID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := RecordPayment(orderID)
	assert.ErrorIs(t, err, models.ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
