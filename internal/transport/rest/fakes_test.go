package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/vault-backend/internal/config"
	"github.com/heartmarshall/vault-backend/internal/domain"
	"github.com/heartmarshall/vault-backend/internal/service/audit"
	"github.com/heartmarshall/vault-backend/internal/service/auth"
	"github.com/heartmarshall/vault-backend/internal/service/journal"
	"github.com/heartmarshall/vault-backend/internal/service/prompt"
	"github.com/heartmarshall/vault-backend/internal/service/spark"
	"github.com/heartmarshall/vault-backend/internal/service/user"
	"github.com/heartmarshall/vault-backend/internal/service/vault"
	"github.com/heartmarshall/vault-backend/pkg/ctxutil"
)

var errNotStubbed = errors.New("not stubbed")

// ---------------------------------------------------------------------------
// Service fakes
// ---------------------------------------------------------------------------

type fakeAuth struct {
	register func(ctx context.Context, in auth.RegisterInput) (*auth.AuthResult, error)
	login    func(ctx context.Context, in auth.LoginInput) (*auth.AuthResult, error)
}

func (f *fakeAuth) Register(ctx context.Context, in auth.RegisterInput) (*auth.AuthResult, error) {
	if f.register == nil {
		return nil, errNotStubbed
	}
	return f.register(ctx, in)
}

func (f *fakeAuth) Login(ctx context.Context, in auth.LoginInput) (*auth.AuthResult, error) {
	if f.login == nil {
		return nil, errNotStubbed
	}
	return f.login(ctx, in)
}

type fakeProfile struct {
	get    func(ctx context.Context) (*domain.User, error)
	update func(ctx context.Context, in user.UpdateProfileInput) (*domain.User, error)
}

func (f *fakeProfile) GetProfile(ctx context.Context) (*domain.User, error) {
	if f.get == nil {
		return nil, errNotStubbed
	}
	return f.get(ctx)
}

func (f *fakeProfile) UpdateProfile(ctx context.Context, in user.UpdateProfileInput) (*domain.User, error) {
	if f.update == nil {
		return nil, errNotStubbed
	}
	return f.update(ctx, in)
}

type fakeVault struct {
	create func(ctx context.Context) (*domain.Couple, error)
	join   func(ctx context.Context, in vault.JoinInput) (*vault.View, error)
	list   func(ctx context.Context) ([]vault.View, error)
	active func(ctx context.Context) (*vault.View, error)
	update func(ctx context.Context, in vault.UpdateInput) (*domain.Couple, error)
	end    func(ctx context.Context, in vault.EndInput) (*domain.Couple, error)
}

func (f *fakeVault) CreateVault(ctx context.Context) (*domain.Couple, error) {
	if f.create == nil {
		return nil, errNotStubbed
	}
	return f.create(ctx)
}

func (f *fakeVault) JoinVault(ctx context.Context, in vault.JoinInput) (*vault.View, error) {
	if f.join == nil {
		return nil, errNotStubbed
	}
	return f.join(ctx, in)
}

func (f *fakeVault) ListVaults(ctx context.Context) ([]vault.View, error) {
	if f.list == nil {
		return nil, errNotStubbed
	}
	return f.list(ctx)
}

func (f *fakeVault) GetActiveVault(ctx context.Context) (*vault.View, error) {
	if f.active == nil {
		return nil, errNotStubbed
	}
	return f.active(ctx)
}

func (f *fakeVault) UpdateVault(ctx context.Context, in vault.UpdateInput) (*domain.Couple, error) {
	if f.update == nil {
		return nil, errNotStubbed
	}
	return f.update(ctx, in)
}

func (f *fakeVault) EndVault(ctx context.Context, in vault.EndInput) (*domain.Couple, error) {
	if f.end == nil {
		return nil, errNotStubbed
	}
	return f.end(ctx, in)
}

type fakeJournal struct {
	today   func(ctx context.Context) (*domain.TodayView, error)
	submit  func(ctx context.Context, in journal.SubmitInput) (*domain.Entry, error)
	edit    func(ctx context.Context, id uuid.UUID, in journal.EditInput) (*domain.Entry, error)
	history func(ctx context.Context, vaultID *uuid.UUID) ([]domain.HistoryMonth, error)
	detail  func(ctx context.Context, id uuid.UUID) (*domain.HistoryItem, error)
}

func (f *fakeJournal) GetTodayView(ctx context.Context) (*domain.TodayView, error) {
	if f.today == nil {
		return nil, errNotStubbed
	}
	return f.today(ctx)
}

func (f *fakeJournal) SubmitEntry(ctx context.Context, in journal.SubmitInput) (*domain.Entry, error) {
	if f.submit == nil {
		return nil, errNotStubbed
	}
	return f.submit(ctx, in)
}

func (f *fakeJournal) EditEntry(ctx context.Context, id uuid.UUID, in journal.EditInput) (*domain.Entry, error) {
	if f.edit == nil {
		return nil, errNotStubbed
	}
	return f.edit(ctx, id, in)
}

func (f *fakeJournal) ListHistory(ctx context.Context, vaultID *uuid.UUID) ([]domain.HistoryMonth, error) {
	if f.history == nil {
		return nil, errNotStubbed
	}
	return f.history(ctx, vaultID)
}

func (f *fakeJournal) GetEntryDetail(ctx context.Context, id uuid.UUID) (*domain.HistoryItem, error) {
	if f.detail == nil {
		return nil, errNotStubbed
	}
	return f.detail(ctx, id)
}

type fakeWrapped struct {
	get func(ctx context.Context, year int, vaultID *uuid.UUID) (*domain.Wrapped, error)
}

func (f *fakeWrapped) GetWrapped(ctx context.Context, year int, vaultID *uuid.UUID) (*domain.Wrapped, error) {
	if f.get == nil {
		return nil, errNotStubbed
	}
	return f.get(ctx, year, vaultID)
}

type fakeSpark struct {
	categories func(ctx context.Context) ([]domain.SparkCategoryCount, error)
	random     func(ctx context.Context, in spark.RandomInput) (*domain.Spark, error)
}

func (f *fakeSpark) ListCategories(ctx context.Context) ([]domain.SparkCategoryCount, error) {
	if f.categories == nil {
		return nil, errNotStubbed
	}
	return f.categories(ctx)
}

func (f *fakeSpark) RandomSpark(ctx context.Context, in spark.RandomInput) (*domain.Spark, error) {
	if f.random == nil {
		return nil, errNotStubbed
	}
	return f.random(ctx, in)
}

type fakePrompts struct {
	create func(ctx context.Context, in prompt.CreateInput) (*domain.Prompt, error)
	list   func(ctx context.Context, in prompt.ListInput) ([]domain.Prompt, error)
	update func(ctx context.Context, id uuid.UUID, in prompt.UpdateInput) (*domain.Prompt, error)
}

func (f *fakePrompts) CreatePrompt(ctx context.Context, in prompt.CreateInput) (*domain.Prompt, error) {
	if f.create == nil {
		return nil, errNotStubbed
	}
	return f.create(ctx, in)
}

func (f *fakePrompts) ListPrompts(ctx context.Context, in prompt.ListInput) ([]domain.Prompt, error) {
	if f.list == nil {
		return nil, errNotStubbed
	}
	return f.list(ctx, in)
}

func (f *fakePrompts) UpdatePrompt(ctx context.Context, id uuid.UUID, in prompt.UpdateInput) (*domain.Prompt, error) {
	if f.update == nil {
		return nil, errNotStubbed
	}
	return f.update(ctx, id, in)
}

type fakeRoles struct {
	set func(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
}

func (f *fakeRoles) SetUserRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	if f.set == nil {
		return nil, errNotStubbed
	}
	return f.set(ctx, id, role)
}

type fakeHistory struct {
	list func(ctx context.Context, in audit.HistoryInput) ([]domain.AuditRecord, error)
}

func (f *fakeHistory) ListHistory(ctx context.Context, in audit.HistoryInput) ([]domain.AuditRecord, error) {
	if f.list == nil {
		return nil, errNotStubbed
	}
	return f.list(ctx, in)
}

// fakeTokens accepts "user-token" and "admin-token".
type fakeTokens struct {
	userID  uuid.UUID
	adminID uuid.UUID
}

func (f *fakeTokens) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	switch token {
	case "user-token":
		return f.userID, "user", nil
	case "admin-token":
		return f.adminID, "admin", nil
	}
	return uuid.Nil, "", domain.ErrUnauthorized
}

// ---------------------------------------------------------------------------
// Harness
// ---------------------------------------------------------------------------

type harness struct {
	auth    *fakeAuth
	profile *fakeProfile
	vault   *fakeVault
	journal *fakeJournal
	wrapped *fakeWrapped
	spark   *fakeSpark
	prompts *fakePrompts
	roles   *fakeRoles
	history *fakeHistory
	tokens  *fakeTokens
	router  http.Handler
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	v := NewValidator()

	h := &harness{
		auth:    &fakeAuth{},
		profile: &fakeProfile{},
		vault:   &fakeVault{},
		journal: &fakeJournal{},
		wrapped: &fakeWrapped{},
		spark:   &fakeSpark{},
		prompts: &fakePrompts{},
		roles:   &fakeRoles{},
		history: &fakeHistory{},
		tokens:  &fakeTokens{userID: uuid.New(), adminID: uuid.New()},
	}

	h.router = NewRouter(Handlers{
		Health:  NewHealthHandler(&dbPingerMock{}, nil, "test"),
		Auth:    NewAuthHandler(h.auth, v, logger),
		Profile: NewProfileHandler(h.profile, v, logger),
		Vault:   NewVaultHandler(h.vault, v, logger),
		Journal: NewJournalHandler(h.journal, v, logger),
		Wrapped: NewWrappedHandler(h.wrapped, logger),
		Spark:   NewSparkHandler(h.spark, v, logger),
		Admin:   NewAdminHandler(h.prompts, h.roles, h.history, v, logger),
	}, RouterDeps{
		Tokens: h.tokens,
		CORS:   config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PATCH,PUT", AllowedHeaders: "Authorization,Content-Type"},
		Logger: logger,
	})
	return h
}

// do sends a request with an optional bearer token and JSON body.
func (h *harness) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

// requester returns the user id the router put into ctx.
func requester(ctx context.Context) uuid.UUID {
	id, _ := ctxutil.UserIDFromCtx(ctx)
	return id
}
