package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"carwash-backend/internal/models"
	"carwash-backend/internal/timeutil"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func mustParseDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := timeutil.ParseDate(value)
	require.NoError(t, err)
	return d
}

// In-memory stores backing the service tests. Missing rows are reported with
// pgx.ErrNoRows, matching what the real repositories return.

type fakeUserStore struct {
	users  map[int]*models.User
	nextID int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int]*models.User{}, nextID: 1}
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) Get(ctx context.Context, id int) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeCarStore struct {
	cars   map[int]*models.Car
	nextID int
}

func newFakeCarStore() *fakeCarStore {
	return &fakeCarStore{cars: map[int]*models.Car{}, nextID: 1}
}

func (f *fakeCarStore) Create(ctx context.Context, car *models.Car) error {
	for _, c := range f.cars {
		if c.PlateNumber == car.PlateNumber {
			return fmt.Errorf("duplicate plate %s", car.PlateNumber)
		}
	}
	car.ID = f.nextID
	f.nextID++
	car.CreatedAt = time.Now()
	car.UpdatedAt = car.CreatedAt
	stored := *car
	f.cars[car.ID] = &stored
	return nil
}

func (f *fakeCarStore) Get(ctx context.Context, id int) (*models.Car, error) {
	c, ok := f.cars[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCarStore) GetByPlate(ctx context.Context, plateNumber string) (*models.Car, error) {
	for _, c := range f.cars {
		if c.PlateNumber == plateNumber {
			copied := *c
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeCarStore) List(ctx context.Context) ([]*models.Car, error) {
	var cars []*models.Car
	for id := 1; id < f.nextID; id++ {
		if c, ok := f.cars[id]; ok {
			copied := *c
			cars = append(cars, &copied)
		}
	}
	return cars, nil
}

func (f *fakeCarStore) Update(ctx context.Context, car *models.Car) error {
	if _, ok := f.cars[car.ID]; !ok {
		return pgx.ErrNoRows
	}
	car.UpdatedAt = time.Now()
	stored := *car
	f.cars[car.ID] = &stored
	return nil
}

func (f *fakeCarStore) Delete(ctx context.Context, id int) error {
	delete(f.cars, id)
	return nil
}

type fakePackageStore struct {
	packages map[int]*models.Package
	nextID   int
}

func newFakePackageStore() *fakePackageStore {
	return &fakePackageStore{packages: map[int]*models.Package{}, nextID: 1}
}

func (f *fakePackageStore) Create(ctx context.Context, pkg *models.Package) error {
	pkg.ID = f.nextID
	f.nextID++
	pkg.CreatedAt = time.Now()
	pkg.UpdatedAt = pkg.CreatedAt
	stored := *pkg
	f.packages[pkg.ID] = &stored
	return nil
}

func (f *fakePackageStore) Get(ctx context.Context, id int) (*models.Package, error) {
	p, ok := f.packages[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *p
	return &copied, nil
}

func (f *fakePackageStore) GetByNumber(ctx context.Context, packageNumber string) (*models.Package, error) {
	for _, p := range f.packages {
		if p.PackageNumber == packageNumber {
			copied := *p
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakePackageStore) List(ctx context.Context) ([]*models.Package, error) {
	var packages []*models.Package
	for id := 1; id < f.nextID; id++ {
		if p, ok := f.packages[id]; ok {
			copied := *p
			packages = append(packages, &copied)
		}
	}
	return packages, nil
}

func (f *fakePackageStore) Update(ctx context.Context, pkg *models.Package) error {
	if _, ok := f.packages[pkg.ID]; !ok {
		return pgx.ErrNoRows
	}
	pkg.UpdatedAt = time.Now()
	stored := *pkg
	f.packages[pkg.ID] = &stored
	return nil
}

func (f *fakePackageStore) Delete(ctx context.Context, id int) error {
	delete(f.packages, id)
	return nil
}

type fakeServiceRecordStore struct {
	records  map[int]*models.ServiceRecordWithDetails
	cars     *fakeCarStore
	packages *fakePackageStore
	payments *fakePaymentStore
	nextID   int
	nextNum  int
}

func newFakeServiceRecordStore(cars *fakeCarStore, packages *fakePackageStore) *fakeServiceRecordStore {
	return &fakeServiceRecordStore{
		records:  map[int]*models.ServiceRecordWithDetails{},
		cars:     cars,
		packages: packages,
		nextID:   1,
		nextNum:  1,
	}
}

func (f *fakeServiceRecordStore) Create(ctx context.Context, record *models.ServiceRecord) error {
	record.ID = f.nextID
	f.nextID++
	record.RecordNumber = fmt.Sprintf("SRV-%06d", f.nextNum)
	f.nextNum++
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt

	car, err := f.cars.Get(ctx, record.CarID)
	if err != nil {
		return err
	}
	pkg, err := f.packages.Get(ctx, record.PackageID)
	if err != nil {
		return err
	}

	f.records[record.ID] = &models.ServiceRecordWithDetails{
		ServiceRecord: *record,
		Car:           car,
		Package:       pkg,
	}
	return nil
}

func (f *fakeServiceRecordStore) Get(ctx context.Context, id int) (*models.ServiceRecordWithDetails, error) {
	r, ok := f.records[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *r
	return &copied, nil
}

func (f *fakeServiceRecordStore) List(ctx context.Context) ([]*models.ServiceRecordWithDetails, error) {
	var records []*models.ServiceRecordWithDetails
	for id := 1; id < f.nextID; id++ {
		if r, ok := f.records[id]; ok {
			copied := *r
			records = append(records, &copied)
		}
	}
	return records, nil
}

func (f *fakeServiceRecordStore) ListUnpaid(ctx context.Context) ([]*models.ServiceRecordWithDetails, error) {
	all, _ := f.List(ctx)
	var unpaid []*models.ServiceRecordWithDetails
	for _, r := range all {
		if r.Status == models.StatusPaid {
			continue
		}
		if f.payments != nil && f.payments.byService[r.ID] != nil {
			continue
		}
		unpaid = append(unpaid, r)
	}
	return unpaid, nil
}

func (f *fakeServiceRecordStore) Update(ctx context.Context, record *models.ServiceRecord) error {
	existing, ok := f.records[record.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	record.UpdatedAt = time.Now()
	existing.ServiceRecord = *record
	return nil
}

func (f *fakeServiceRecordStore) Delete(ctx context.Context, id int) error {
	delete(f.records, id)
	return nil
}

func (f *fakeServiceRecordStore) setStatus(id int, status models.ServiceStatus) {
	f.records[id].Status = status
}

type fakePaymentStore struct {
	payments  map[int]*models.Payment
	byService map[int]*models.Payment
	records   *fakeServiceRecordStore
	byDate    map[string][]*models.PaymentWithDetails
	nextID    int
	nextNum   int
}

func newFakePaymentStore(records *fakeServiceRecordStore) *fakePaymentStore {
	f := &fakePaymentStore{
		payments:  map[int]*models.Payment{},
		byService: map[int]*models.Payment{},
		records:   records,
		byDate:    map[string][]*models.PaymentWithDetails{},
		nextID:    1,
		nextNum:   1,
	}
	if records != nil {
		records.payments = f
	}
	return f
}

func (f *fakePaymentStore) Create(ctx context.Context, payment *models.Payment) error {
	if f.byService[payment.ServiceRecordID] != nil {
		return fmt.Errorf("duplicate payment for service %d", payment.ServiceRecordID)
	}
	payment.ID = f.nextID
	f.nextID++
	payment.PaymentNumber = fmt.Sprintf("PAY-%06d", f.nextNum)
	f.nextNum++
	payment.CreatedAt = time.Now()

	stored := *payment
	f.payments[payment.ID] = &stored
	f.byService[payment.ServiceRecordID] = &stored

	// Mirror the transactional status flip the real repository performs
	if f.records != nil {
		if r, ok := f.records.records[payment.ServiceRecordID]; ok {
			r.Status = models.StatusPaid
		}
	}
	return nil
}

func (f *fakePaymentStore) Get(ctx context.Context, id int) (*models.PaymentWithDetails, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	detail := &models.PaymentWithDetails{Payment: *p}
	if f.records != nil {
		if r, err := f.records.Get(ctx, p.ServiceRecordID); err == nil {
			detail.Service = r
		}
	}
	return detail, nil
}

func (f *fakePaymentStore) GetByServiceRecordID(ctx context.Context, serviceRecordID int) (*models.Payment, error) {
	p, ok := f.byService[serviceRecordID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *p
	return &copied, nil
}

func (f *fakePaymentStore) List(ctx context.Context) ([]*models.PaymentWithDetails, error) {
	var payments []*models.PaymentWithDetails
	for id := 1; id < f.nextID; id++ {
		if _, ok := f.payments[id]; ok {
			p, err := f.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			payments = append(payments, p)
		}
	}
	return payments, nil
}

func (f *fakePaymentStore) ListByDate(ctx context.Context, date string) ([]*models.PaymentWithDetails, error) {
	return f.byDate[date], nil
}

type fakeReportStore struct {
	cars      int
	packages  int
	services  int
	payments  int
	revenue   float64
	byPackage []models.PackageRevenue
}

func (f *fakeReportStore) Counts(ctx context.Context) (int, int, int, int, error) {
	return f.cars, f.packages, f.services, f.payments, nil
}

func (f *fakeReportStore) TotalRevenue(ctx context.Context, startDate, endDate string) (float64, error) {
	return f.revenue, nil
}

func (f *fakeReportStore) RevenueByPackage(ctx context.Context, startDate, endDate string) ([]models.PackageRevenue, error) {
	return f.byPackage, nil
}
