package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lojaviva/commerce-system/internal/api"
	"github.com/lojaviva/commerce-system/internal/api/handler"
	"github.com/lojaviva/commerce-system/internal/core/domain"
	"github.com/lojaviva/commerce-system/internal/core/ports"
	"github.com/lojaviva/commerce-system/internal/core/service"
)

// stubUserService lets each test pin the service outcome per operation.
type stubUserService struct {
	listAllFn  func(ctx context.Context) ([]domain.User, error)
	getFn      func(ctx context.Context, id int64) (domain.User, error)
	registerFn func(ctx context.Context, in ports.UserInput) (domain.User, error)
	updateFn   func(ctx context.Context, id int64, in ports.UserInput) (domain.User, error)
	deleteFn   func(ctx context.Context, id int64) (string, error)
}

func (s *stubUserService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.listAllFn(ctx)
}

func (s *stubUserService) Get(ctx context.Context, id int64) (domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) Register(ctx context.Context, in ports.UserInput) (domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubUserService) Update(ctx context.Context, id int64, in ports.UserInput) (domain.User, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubUserService) Delete(ctx context.Context, id int64) (string, error) {
	return s.deleteFn(ctx, id)
}

// newUserAPI wires the handler and the central error translation without the
// metrics middleware, which a test has no business registering twice.
func newUserAPI(svc ports.UserService) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	h := handler.NewUserHandler(svc)
	e.GET("/", h.Health)
	e.GET("/api/users/all", h.ListAll)
	e.GET("/api/users/:id", h.Get)
	e.POST("/api/users/register", h.Register)
	e.PUT("/api/users/update/:id", h.Update)
	e.DELETE("/api/users/delete/:id", h.Delete)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func detailOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not a detail envelope: %s", rec.Body.String())
	}
	return body.Detail
}

func TestUserHealth(t *testing.T) {
	e := newUserAPI(&stubUserService{})

	rec := doJSON(t, e, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := detailOf(t, rec); got != "User API has started successfully" {
		t.Errorf("detail = %q", got)
	}
}

func TestUserGet_InvalidPathID(t *testing.T) {
	e := newUserAPI(&stubUserService{})

	rec := doJSON(t, e, http.MethodGet, "/api/users/abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	want := "error validating data: invalid id: abc - try an integer number higher than zero"
	if got := detailOf(t, rec); got != want {
		t.Errorf("detail = %q, want %q", got, want)
	}
}

func TestUserGet_NotFound(t *testing.T) {
	e := newUserAPI(&stubUserService{
		getFn: func(ctx context.Context, id int64) (domain.User, error) {
			return domain.User{}, domain.NewNotFoundError("invalid user ID 7")
		},
	})

	rec := doJSON(t, e, http.MethodGet, "/api/users/7", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := detailOf(t, rec); got != "invalid user ID 7" {
		t.Errorf("detail = %q", got)
	}
}

func TestUserRegister_Success(t *testing.T) {
	e := newUserAPI(&stubUserService{
		registerFn: func(ctx context.Context, in ports.UserInput) (domain.User, error) {
			u := in.User()
			u.ID = 1
			return u, nil
		},
	})

	body := `{"full_name":"John Smith","cpf":"123.456.789/10","email":"john@example.com","phone_number":"(11) 91234-5678"}`
	rec := doJSON(t, e, http.MethodPost, "/api/users/register", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.ID != 1 || got.CPF != "123.456.789/10" {
		t.Errorf("unexpected response: %+v", got)
	}
}

func TestUserRegister_ValidationError(t *testing.T) {
	e := newUserAPI(&stubUserService{
		registerFn: func(ctx context.Context, in ports.UserInput) (domain.User, error) {
			return domain.User{}, domain.NewValidationError("invalid user CPF: 123 - try format: 111.111.111/11")
		},
	})

	rec := doJSON(t, e, http.MethodPost, "/api/users/register", `{"cpf":"123"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	got := detailOf(t, rec)
	if !strings.HasPrefix(got, "error validating data: ") {
		t.Errorf("detail = %q, want the validation prefix", got)
	}
}

func TestUserRegister_Duplicate(t *testing.T) {
	e := newUserAPI(&stubUserService{
		registerFn: func(ctx context.Context, in ports.UserInput) (domain.User, error) {
			return domain.User{}, domain.NewDuplicateError("user with this CPF already exists")
		},
	})

	rec := doJSON(t, e, http.MethodPost, "/api/users/register", `{"cpf":"123.456.789/10"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := detailOf(t, rec); got != "error registering data: user with this CPF already exists" {
		t.Errorf("detail = %q", got)
	}
}

func TestUserRegister_MalformedBody(t *testing.T) {
	e := newUserAPI(&stubUserService{})

	rec := doJSON(t, e, http.MethodPost, "/api/users/register", `{"full_name":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := detailOf(t, rec); got != "invalid payload" {
		t.Errorf("detail = %q", got)
	}
}

func TestUserListAll_EmptyStore(t *testing.T) {
	e := newUserAPI(&stubUserService{
		listAllFn: func(ctx context.Context) ([]domain.User, error) {
			return nil, domain.NewNotFoundError("no users found")
		},
	})

	rec := doJSON(t, e, http.MethodGet, "/api/users/all", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUserDelete_Success(t *testing.T) {
	e := newUserAPI(&stubUserService{
		deleteFn: func(ctx context.Context, id int64) (string, error) {
			return service.MsgUserAndOrdersDeleted, nil
		},
	})

	rec := doJSON(t, e, http.MethodDelete, "/api/users/delete/3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := detailOf(t, rec); got != service.MsgUserAndOrdersDeleted {
		t.Errorf("detail = %q", got)
	}
}

func TestUserDelete_CascadeFailure(t *testing.T) {
	e := newUserAPI(&stubUserService{
		deleteFn: func(ctx context.Context, id int64) (string, error) {
			return "", domain.NewUpstreamError(0, "error sending request to order API", nil)
		},
	})

	rec := doJSON(t, e, http.MethodDelete, "/api/users/delete/3", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if got := detailOf(t, rec); got != "error sending request to order API" {
		t.Errorf("detail = %q", got)
	}
}
