package postgres

import (
	"fmt"
	"testing"
	"time"

	"github.com/Kamibony/DealUpCool/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

const getDealQuery = "SELECT deal_id, name, description, original_price, deal_price, status,\\s+data_needed, image_url, starts_at, ends_at, final_instructions, created_at\\s+FROM deals\\s+WHERE deal_id = \\$1"

func dealColumns() []string {
	return []string{
		"deal_id", "name", "description", "original_price", "deal_price", "status",
		"data_needed", "image_url", "starts_at", "ends_at", "final_instructions", "created_at",
	}
}

func TestDealRepo_GetDeal(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewDealRepo(db)

	rows := sqlmock.NewRows(dealColumns()).
		AddRow(1, "Káva Kolumbie", "Zrnková káva", 450.0, 299.5, "active",
			"email, počet kusů", nil, nil, nil, "Plať {deal_price} Kč.", time.Now())

	mock.ExpectQuery(getDealQuery).WithArgs(int64(1)).WillReturnRows(rows)

	deal, err := repo.GetDeal(1)

	assert.NoError(t, err)
	assert.NotNil(t, deal)
	assert.Equal(t, int64(1), deal.ID)
	assert.Equal(t, "Káva Kolumbie", deal.Name)
	assert.Equal(t, domain.DealActive, deal.Status)
	assert.Equal(t, "email, počet kusů", deal.DataNeeded)
	assert.NotNil(t, deal.OriginalPrice)
	assert.Equal(t, 450.0, *deal.OriginalPrice)
	assert.Equal(t, "Plať {deal_price} Kč.", deal.FinalInstructions)
	assert.Nil(t, deal.StartsAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_GetDeal_NullColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewDealRepo(db)

	rows := sqlmock.NewRows(dealColumns()).
		AddRow(2, "Káva", nil, nil, 199.0, "active", nil, nil, nil, nil, nil, time.Now())

	mock.ExpectQuery(getDealQuery).WithArgs(int64(2)).WillReturnRows(rows)

	deal, err := repo.GetDeal(2)

	assert.NoError(t, err)
	assert.NotNil(t, deal)
	assert.Empty(t, deal.Description)
	assert.Empty(t, deal.DataNeeded)
	assert.Empty(t, deal.FinalInstructions)
	assert.Nil(t, deal.OriginalPrice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_GetDeal_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewDealRepo(db)

	mock.ExpectQuery(getDealQuery).WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(dealColumns()))

	deal, err := repo.GetDeal(99)

	assert.NoError(t, err)
	assert.Nil(t, deal)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_GetDeal_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewDealRepo(db)

	mock.ExpectQuery(getDealQuery).WithArgs(int64(1)).
		WillReturnError(fmt.Errorf("query error"))

	deal, err := repo.GetDeal(1)

	assert.Error(t, err)
	assert.Nil(t, deal)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_ListActiveDeals(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewDealRepo(db)

	rows := sqlmock.NewRows([]string{"deal_id", "name", "description", "original_price", "deal_price"}).
		AddRow(2, "Sýr", "Farmářský sýr", nil, 150.0).
		AddRow(1, "Káva", nil, 450.0, 299.5)

	mock.ExpectQuery("SELECT deal_id, name, description, original_price, deal_price\\s+FROM deals\\s+WHERE status = 'active'").
		WillReturnRows(rows)

	deals, err := repo.ListActiveDeals()

	assert.NoError(t, err)
	assert.Len(t, deals, 2)
	assert.Equal(t, "Sýr", deals[0].Name)
	assert.Nil(t, deals[0].OriginalPrice)
	assert.Equal(t, "Káva", deals[1].Name)
	assert.NotNil(t, deals[1].OriginalPrice)
	assert.Equal(t, domain.DealActive, deals[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_ListActiveDeals_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewDealRepo(db)

	mock.ExpectQuery("SELECT deal_id, name, description, original_price, deal_price").
		WillReturnRows(sqlmock.NewRows([]string{"deal_id", "name", "description", "original_price", "deal_price"}))

	deals, err := repo.ListActiveDeals()

	assert.NoError(t, err)
	assert.Empty(t, deals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_ListActiveDeals_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewDealRepo(db)

	rows := sqlmock.NewRows([]string{"deal_id", "name", "description", "original_price", "deal_price"}).
		AddRow("invalid", "Káva", nil, nil, 299.5)

	mock.ExpectQuery("SELECT deal_id, name, description, original_price, deal_price").
		WillReturnRows(rows)

	deals, err := repo.ListActiveDeals()

	assert.Error(t, err)
	assert.Nil(t, deals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_InsertDeal(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewDealRepo(db)

	origPrice := 450.0
	deal := domain.Deal{
		Name:          "Káva Kolumbie",
		Description:   "Zrnková káva",
		OriginalPrice: &origPrice,
		DealPrice:     299.5,
		DataNeeded:    "email",
	}

	mock.ExpectQuery("INSERT INTO deals").
		WithArgs("Káva Kolumbie", "Zrnková káva", 450.0, 299.5, "active",
			"email", nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"deal_id"}).AddRow(7))

	id, err := repo.InsertDeal(deal)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_InsertDeal_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewDealRepo(db)

	mock.ExpectQuery("INSERT INTO deals").
		WillReturnError(fmt.Errorf("insert error"))

	id, err := repo.InsertDeal(domain.Deal{Name: "Káva", DealPrice: 199})

	assert.Error(t, err)
	assert.Zero(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
