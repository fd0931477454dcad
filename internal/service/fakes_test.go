package service

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/roster-service/internal/domain"
	"github.com/spec-kit/roster-service/internal/events"
)

// In-memory fakes for the repository interfaces, shared by the service tests.

type fakeUserRepo struct {
	users     map[string]*domain.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.Enabled = true
	stored := *user
	f.users[user.Username] = &stored
	return nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	result := make([]domain.User, 0, len(f.users))
	for _, user := range f.users {
		copied := *user
		copied.PasswordHash = ""
		result = append(result, copied)
	}
	return result, nil
}

func (f *fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	_, ok := f.users[username]
	return ok, nil
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range f.users {
		if user.EmailAddress == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeRoleRepo struct {
	roles map[string]*domain.Role
}

func newFakeRoleRepo(roles ...domain.Role) *fakeRoleRepo {
	repo := &fakeRoleRepo{roles: map[string]*domain.Role{}}
	for i := range roles {
		repo.roles[string(roles[i].Name)] = &roles[i]
	}
	return repo
}

func (f *fakeRoleRepo) Create(_ context.Context, role *domain.Role) error {
	role.ID = int64(len(f.roles) + 1)
	f.roles[string(role.Name)] = role
	return nil
}

func (f *fakeRoleRepo) GetByName(_ context.Context, name string) (*domain.Role, error) {
	role, ok := f.roles[name]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return role, nil
}

func (f *fakeRoleRepo) GetByID(_ context.Context, id int64) (*domain.Role, error) {
	for _, role := range f.roles {
		if role.ID == id {
			return role, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeRoleRepo) List(_ context.Context) ([]domain.Role, error) {
	result := make([]domain.Role, 0, len(f.roles))
	for _, role := range f.roles {
		result = append(result, *role)
	}
	return result, nil
}

func (f *fakeRoleRepo) UpdateName(_ context.Context, id int64, name string) error {
	for key, role := range f.roles {
		if role.ID == id {
			delete(f.roles, key)
			role.Name = domain.RoleName(name)
			f.roles[name] = role
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeRoleRepo) DeleteByName(_ context.Context, name string) error {
	if _, ok := f.roles[name]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.roles, name)
	return nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	nextID   int64
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*domain.Session{}}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *domain.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	session.ID = f.nextID
	stored := *session
	f.sessions[session.Token] = &stored
	return nil
}

func (f *fakeSessionRepo) GetByToken(_ context.Context, token string) (*domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[token]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *session
	return &copied, nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, username, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if session, ok := f.sessions[token]; ok && session.Username == username {
		delete(f.sessions, token)
	}
	return nil
}

func (f *fakeSessionRepo) DeleteAll(_ context.Context, username string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for token, session := range f.sessions {
		if session.Username == username {
			delete(f.sessions, token)
		}
	}
	return nil
}

func (f *fakeSessionRepo) DeleteByToken(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, token)
	return nil
}

func (f *fakeSessionRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sessions)
}

// fakePlayerRepo programs the roster mutation outcomes; the read methods
// serve whatever players it was seeded with.
type fakePlayerRepo struct {
	players     map[int64]*domain.Player
	countInTeam int
	assignErr   error
	transferErr error
	unassignErr error

	assignedTeam *int64
	assignedIDs  []int64
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: map[int64]*domain.Player{}}
}

func (f *fakePlayerRepo) Create(_ context.Context, player *domain.Player) error {
	player.ID = int64(len(f.players) + 1)
	f.players[player.ID] = player
	return nil
}

func (f *fakePlayerRepo) GetByID(_ context.Context, id int64) (*domain.Player, error) {
	player, ok := f.players[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return player, nil
}

func (f *fakePlayerRepo) GetByUsername(_ context.Context, username string) (*domain.Player, error) {
	for _, player := range f.players {
		if player.Username == username {
			return player, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakePlayerRepo) List(_ context.Context) ([]domain.Player, error) {
	result := make([]domain.Player, 0, len(f.players))
	for _, player := range f.players {
		result = append(result, *player)
	}
	return result, nil
}

func (f *fakePlayerRepo) ListByTeam(_ context.Context, teamID int64) ([]domain.Player, error) {
	var result []domain.Player
	for _, player := range f.players {
		if player.Team != nil && player.Team.ID == teamID {
			result = append(result, *player)
		}
	}
	return result, nil
}

func (f *fakePlayerRepo) ListWithoutTeam(_ context.Context) ([]domain.Player, error) {
	var result []domain.Player
	for _, player := range f.players {
		if player.Team == nil {
			result = append(result, *player)
		}
	}
	return result, nil
}

func (f *fakePlayerRepo) Update(_ context.Context, player *domain.Player) error {
	if _, ok := f.players[player.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.players[player.ID] = player
	return nil
}

func (f *fakePlayerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.players[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.players, id)
	return nil
}

func (f *fakePlayerRepo) CountInTeam(_ context.Context, _ int64) (int, error) {
	return f.countInTeam, nil
}

func (f *fakePlayerRepo) AssignToTeam(_ context.Context, playerIDs []int64, teamID int64) error {
	if f.assignErr != nil {
		return f.assignErr
	}
	f.assignedTeam = &teamID
	f.assignedIDs = playerIDs
	return nil
}

func (f *fakePlayerRepo) TransferToTeam(_ context.Context, _, _, _ int64) error {
	return f.transferErr
}

func (f *fakePlayerRepo) UnassignFromTeam(_ context.Context, _ int64) error {
	return f.unassignErr
}

type fakeTeamRepo struct {
	teams     map[int64]*domain.Team
	createErr error
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: map[int64]*domain.Team{}}
}

func (f *fakeTeamRepo) Create(_ context.Context, team *domain.Team) error {
	if f.createErr != nil {
		return f.createErr
	}
	team.ID = int64(len(f.teams) + 1)
	f.teams[team.ID] = team
	return nil
}

func (f *fakeTeamRepo) GetByID(_ context.Context, id int64) (*domain.Team, error) {
	team, ok := f.teams[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return team, nil
}

func (f *fakeTeamRepo) List(_ context.Context) ([]domain.Team, error) {
	result := make([]domain.Team, 0, len(f.teams))
	for _, team := range f.teams {
		result = append(result, *team)
	}
	return result, nil
}

func (f *fakeTeamRepo) Update(_ context.Context, id int64, name string, coachName *string) error {
	team, ok := f.teams[id]
	if !ok {
		return pgx.ErrNoRows
	}
	team.Name = name
	team.CoachName = coachName
	return nil
}

func (f *fakeTeamRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.teams[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.teams, id)
	return nil
}

// captureDispatcher records published events for assertions.
type captureDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *captureDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *captureDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *captureDispatcher) published() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.events...)
}
