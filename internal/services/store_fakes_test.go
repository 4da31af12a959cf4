package services

import (
	"sort"

	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-api/internal/identity"
	"github.com/staffdesk/staffdesk-api/internal/models"
	"github.com/staffdesk/staffdesk-api/internal/store"
)

type fakeUsers struct {
	byID   map[uuid.UUID]*models.User
	writes int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: make(map[uuid.UUID]*models.User)}
}

func (f *fakeUsers) ByID(id uuid.UUID) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUsers) ByEmail(email string) (*models.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) Create(u *models.User) error {
	if _, err := f.ByEmail(u.Email); err == nil {
		return store.ErrDuplicate
	}
	clone := *u
	f.byID[u.ID] = &clone
	f.writes++
	return nil
}

func (f *fakeUsers) Save(u *models.User) error {
	if _, ok := f.byID[u.ID]; !ok {
		return store.ErrNotFound
	}
	clone := *u
	f.byID[u.ID] = &clone
	f.writes++
	return nil
}

type fakeEmployees struct {
	byID   map[uuid.UUID]*models.Employee
	order  []uuid.UUID
	writes int
}

func newFakeEmployees() *fakeEmployees {
	return &fakeEmployees{byID: make(map[uuid.UUID]*models.Employee)}
}

func (f *fakeEmployees) ByID(id uuid.UUID) (*models.Employee, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *e
	return &clone, nil
}

func (f *fakeEmployees) ByEmail(email string) (*models.Employee, error) {
	for _, e := range f.byID {
		if e.Email == email {
			clone := *e
			return &clone, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeEmployees) List() ([]models.Employee, error) {
	out := make([]models.Employee, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, *f.byID[id])
	}
	return out, nil
}

func (f *fakeEmployees) Create(e *models.Employee) error {
	if _, err := f.ByEmail(e.Email); err == nil {
		return store.ErrDuplicate
	}
	clone := *e
	f.byID[e.ID] = &clone
	f.order = append(f.order, e.ID)
	f.writes++
	return nil
}

func (f *fakeEmployees) Save(e *models.Employee) error {
	if _, ok := f.byID[e.ID]; !ok {
		return store.ErrNotFound
	}
	for _, other := range f.byID {
		if other.ID != e.ID && other.Email == e.Email {
			return store.ErrDuplicate
		}
	}
	clone := *e
	f.byID[e.ID] = &clone
	f.writes++
	return nil
}

func (f *fakeEmployees) Delete(e *models.Employee) error {
	if _, ok := f.byID[e.ID]; !ok {
		return store.ErrNotFound
	}
	delete(f.byID, e.ID)
	for i, id := range f.order {
		if id == e.ID {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	f.writes++
	return nil
}

type fakeTasks struct {
	byID   map[uuid.UUID]*models.Task
	order  []uuid.UUID
	writes int
}

func newFakeTasks() *fakeTasks {
	return &fakeTasks{byID: make(map[uuid.UUID]*models.Task)}
}

func (f *fakeTasks) ByID(id uuid.UUID) (*models.Task, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *t
	return &clone, nil
}

func (f *fakeTasks) List(filter store.TaskFilter) ([]models.Task, error) {
	out := make([]models.Task, 0, len(f.order))
	for _, id := range f.order {
		t := f.byID[id]
		if filter.EmployeeID != nil {
			if t.EmployeeID == nil || *t.EmployeeID != *filter.EmployeeID {
				continue
			}
		}
		out = append(out, *t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out, nil
}

func (f *fakeTasks) Create(t *models.Task) error {
	clone := *t
	f.byID[t.ID] = &clone
	f.order = append(f.order, t.ID)
	f.writes++
	return nil
}

func (f *fakeTasks) Save(t *models.Task) error {
	if _, ok := f.byID[t.ID]; !ok {
		return store.ErrNotFound
	}
	clone := *t
	f.byID[t.ID] = &clone
	f.writes++
	return nil
}

func (f *fakeTasks) Delete(t *models.Task) error {
	if _, ok := f.byID[t.ID]; !ok {
		return store.ErrNotFound
	}
	delete(f.byID, t.ID)
	for i, id := range f.order {
		if id == t.ID {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	f.writes++
	return nil
}

type fakeRefreshTokens struct {
	byHash map[string]*models.RefreshToken
}

func newFakeRefreshTokens() *fakeRefreshTokens {
	return &fakeRefreshTokens{byHash: make(map[string]*models.RefreshToken)}
}

func (f *fakeRefreshTokens) ByHash(hash string) (*models.RefreshToken, error) {
	t, ok := f.byHash[hash]
	if !ok || t.Revoked {
		return nil, store.ErrNotFound
	}
	clone := *t
	return &clone, nil
}

func (f *fakeRefreshTokens) Create(t *models.RefreshToken) error {
	clone := *t
	f.byHash[t.TokenHash] = &clone
	return nil
}

func (f *fakeRefreshTokens) Revoke(t *models.RefreshToken) error {
	stored, ok := f.byHash[t.TokenHash]
	if !ok {
		return store.ErrNotFound
	}
	stored.Revoked = true
	return nil
}

func (f *fakeRefreshTokens) RevokeByHash(hash string) error {
	if stored, ok := f.byHash[hash]; ok {
		stored.Revoked = true
	}
	return nil
}

// testEnv bundles the fakes behind a store.Store for service construction.
type testEnv struct {
	users     *fakeUsers
	employees *fakeEmployees
	tasks     *fakeTasks
	refresh   *fakeRefreshTokens
	store     *store.Store
	resolver  *identity.Resolver
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users:     newFakeUsers(),
		employees: newFakeEmployees(),
		tasks:     newFakeTasks(),
		refresh:   newFakeRefreshTokens(),
	}
	env.store = &store.Store{
		Users:         env.users,
		Employees:     env.employees,
		Tasks:         env.tasks,
		RefreshTokens: env.refresh,
	}
	env.resolver = identity.NewResolver(env.users, env.employees)
	return env
}

func (env *testEnv) addUser(role models.AccountRole, email string) *models.User {
	user := &models.User{
		ID:          uuid.New(),
		Name:        "Test User",
		Email:       email,
		Password:    "x",
		AccountRole: role,
	}
	clone := *user
	env.users.byID[user.ID] = &clone
	return user
}

func (env *testEnv) addEmployee(email string) *models.Employee {
	emp := &models.Employee{
		ID:       uuid.New(),
		Name:     "Test Employee",
		Email:    email,
		JobTitle: "Engineer",
	}
	clone := *emp
	env.employees.byID[emp.ID] = &clone
	env.employees.order = append(env.employees.order, emp.ID)
	return emp
}

func (env *testEnv) addTask(title string, due string, employeeID *uuid.UUID) *models.Task {
	dueDate, _ := parseDueDate(due)
	task := &models.Task{
		ID:         uuid.New(),
		Title:      title,
		Status:     models.StatusTodo,
		DueDate:    dueDate,
		EmployeeID: employeeID,
	}
	clone := *task
	env.tasks.byID[task.ID] = &clone
	env.tasks.order = append(env.tasks.order, task.ID)
	return task
}

func adminIdentity(user *models.User) *identity.Identity {
	return &identity.Identity{User: user}
}

func employeeIdentity(user *models.User, emp *models.Employee) *identity.Identity {
	return &identity.Identity{User: user, Employee: emp}
}
