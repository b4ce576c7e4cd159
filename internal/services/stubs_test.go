package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/legend1349/USYDSTRATA2025/internal/models"
)

// In-memory repository doubles. They mirror the store contract the SQL
// repositories implement, including list ordering, so the services can be
// exercised without a database.

type stubOwnerRepo struct {
	nextID int64
	rows   map[int64]models.Owner
	errs   map[string]error // op name -> forced error
}

func newStubOwnerRepo() *stubOwnerRepo {
	return &stubOwnerRepo{rows: make(map[int64]models.Owner), errs: make(map[string]error)}
}

func (r *stubOwnerRepo) Create(_ context.Context, o *models.Owner) error {
	if err := r.errs["create"]; err != nil {
		return err
	}
	r.nextID++
	o.ID = r.nextID
	r.rows[o.ID] = *o
	return nil
}

func (r *stubOwnerRepo) GetByID(_ context.Context, id int64) (*models.Owner, error) {
	if err := r.errs["get"]; err != nil {
		return nil, err
	}
	o, ok := r.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := o
	return &copied, nil
}

func (r *stubOwnerRepo) List(_ context.Context) ([]*models.Owner, error) {
	if err := r.errs["list"]; err != nil {
		return nil, err
	}
	out := make([]*models.Owner, 0, len(r.rows))
	for _, o := range r.rows {
		copied := o
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Unit < out[j].Unit })
	return out, nil
}

func (r *stubOwnerRepo) Update(_ context.Context, o *models.Owner) error {
	if err := r.errs["update"]; err != nil {
		return err
	}
	if _, ok := r.rows[o.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.rows[o.ID] = *o
	return nil
}

func (r *stubOwnerRepo) Delete(_ context.Context, id int64) (bool, error) {
	if err := r.errs["delete"]; err != nil {
		return false, err
	}
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

type stubMaintenanceRepo struct {
	nextID int64
	rows   map[int64]models.MaintenanceRequest
	errs   map[string]error
}

func newStubMaintenanceRepo() *stubMaintenanceRepo {
	return &stubMaintenanceRepo{rows: make(map[int64]models.MaintenanceRequest), errs: make(map[string]error)}
}

func (r *stubMaintenanceRepo) Create(_ context.Context, m *models.MaintenanceRequest) error {
	if err := r.errs["create"]; err != nil {
		return err
	}
	r.nextID++
	m.ID = r.nextID
	r.rows[m.ID] = *m
	return nil
}

func (r *stubMaintenanceRepo) GetByID(_ context.Context, id int64) (*models.MaintenanceRequest, error) {
	m, ok := r.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := m
	return &copied, nil
}

func (r *stubMaintenanceRepo) List(_ context.Context) ([]*models.MaintenanceRequest, error) {
	if err := r.errs["list"]; err != nil {
		return nil, err
	}
	out := make([]*models.MaintenanceRequest, 0, len(r.rows))
	for _, m := range r.rows {
		copied := m
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *stubMaintenanceRepo) Update(_ context.Context, m *models.MaintenanceRequest) error {
	if err := r.errs["update"]; err != nil {
		return err
	}
	if _, ok := r.rows[m.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.rows[m.ID] = *m
	return nil
}

func (r *stubMaintenanceRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

type stubDocumentRepo struct {
	nextID int64
	rows   map[int64]models.Document
	errs   map[string]error
}

func newStubDocumentRepo() *stubDocumentRepo {
	return &stubDocumentRepo{rows: make(map[int64]models.Document), errs: make(map[string]error)}
}

func (r *stubDocumentRepo) Create(_ context.Context, d *models.Document) error {
	if err := r.errs["create"]; err != nil {
		return err
	}
	r.nextID++
	d.ID = r.nextID
	r.rows[d.ID] = *d
	return nil
}

func (r *stubDocumentRepo) GetByID(_ context.Context, id int64) (*models.Document, error) {
	d, ok := r.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := d
	return &copied, nil
}

func (r *stubDocumentRepo) List(_ context.Context) ([]*models.Document, error) {
	out := make([]*models.Document, 0, len(r.rows))
	for _, d := range r.rows {
		copied := d
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UploadDate.Equal(out[j].UploadDate) {
			return out[i].UploadDate.After(out[j].UploadDate)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *stubDocumentRepo) Update(_ context.Context, d *models.Document) error {
	if _, ok := r.rows[d.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.rows[d.ID] = *d
	return nil
}

func (r *stubDocumentRepo) Delete(_ context.Context, id int64) (bool, error) {
	if err := r.errs["delete"]; err != nil {
		return false, err
	}
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

type stubLevyRepo struct {
	nextID int64
	rows   map[int64]models.Levy
	errs   map[string]error
}

func newStubLevyRepo() *stubLevyRepo {
	return &stubLevyRepo{rows: make(map[int64]models.Levy), errs: make(map[string]error)}
}

func (r *stubLevyRepo) Create(_ context.Context, l *models.Levy) error {
	if err := r.errs["create"]; err != nil {
		return err
	}
	r.nextID++
	l.ID = r.nextID
	r.rows[l.ID] = *l
	return nil
}

func (r *stubLevyRepo) GetByID(_ context.Context, id int64) (*models.Levy, error) {
	l, ok := r.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := l
	return &copied, nil
}

func (r *stubLevyRepo) List(_ context.Context) ([]*models.Levy, error) {
	out := make([]*models.Levy, 0, len(r.rows))
	for _, l := range r.rows {
		copied := l
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DueDate.Equal(out[j].DueDate) {
			return out[i].DueDate.Before(out[j].DueDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *stubLevyRepo) ListPastDueWithStatus(ctx context.Context, status string, asOf time.Time) ([]*models.Levy, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Levy, 0, len(all))
	for _, l := range all {
		if l.Status == status && l.DueDate.Before(asOf) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *stubLevyRepo) Update(_ context.Context, l *models.Levy) error {
	if err := r.errs["update"]; err != nil {
		return err
	}
	if _, ok := r.rows[l.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.rows[l.ID] = *l
	return nil
}

func (r *stubLevyRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

type stubBudgetRepo struct {
	nextID int64
	rows   map[int64]models.BudgetItem
}

func newStubBudgetRepo() *stubBudgetRepo {
	return &stubBudgetRepo{rows: make(map[int64]models.BudgetItem)}
}

func (r *stubBudgetRepo) Create(_ context.Context, b *models.BudgetItem) error {
	r.nextID++
	b.ID = r.nextID
	r.rows[b.ID] = *b
	return nil
}

func (r *stubBudgetRepo) GetByID(_ context.Context, id int64) (*models.BudgetItem, error) {
	b, ok := r.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := b
	return &copied, nil
}

func (r *stubBudgetRepo) List(_ context.Context) ([]*models.BudgetItem, error) {
	out := make([]*models.BudgetItem, 0, len(r.rows))
	for _, b := range r.rows {
		copied := b
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FiscalYear != out[j].FiscalYear {
			return out[i].FiscalYear > out[j].FiscalYear
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

func (r *stubBudgetRepo) ListByFiscalYear(ctx context.Context, fiscalYear int) ([]*models.BudgetItem, error) {
	all, _ := r.List(ctx)
	out := make([]*models.BudgetItem, 0, len(all))
	for _, b := range all {
		if b.FiscalYear == fiscalYear {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *stubBudgetRepo) Update(_ context.Context, b *models.BudgetItem) error {
	if _, ok := r.rows[b.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.rows[b.ID] = *b
	return nil
}

func (r *stubBudgetRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

// stubUserRepo matches emails case-insensitively, like the SQL repo's
// lower(email)=lower($1) lookup.
type stubUserRepo struct {
	rows map[string]models.User // keyed by lowercase email
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{rows: make(map[string]models.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *models.User) error {
	key := strings.ToLower(u.Email)
	if _, ok := r.rows[key]; ok {
		return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	}
	u.CreatedAt = time.Now()
	r.rows[key] = *u
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range r.rows {
		if u.ID.String() == id {
			copied := u
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := r.rows[strings.ToLower(email)]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := u
	return &copied, nil
}

// recordingNotifier captures notification calls for assertions.
type recordingNotifier struct {
	created []*models.MaintenanceRequest
}

func (n *recordingNotifier) MaintenanceRequestCreated(_ context.Context, m *models.MaintenanceRequest) {
	n.created = append(n.created, m)
}
