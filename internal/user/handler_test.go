package user_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/user-admin/internal/auth"
	"github.com/frahmantamala/user-admin/internal/user"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// MockUserService implements user.ServiceAPI for handler testing
type MockUserService struct {
	findUserResult  user.UserPersonDetails
	findUserErr     error
	authUser        *user.AuthUser
	authUserErr     error
	usersByEmail    []*user.AuthUser
	usersByEmailErr error
	changeErr       error

	enableCalls  []changeCall
	disableCalls []changeCall
}

type changeCall struct {
	Username      string
	AdminUsername string
	Authorities   []string
}

func (m *MockUserService) FindUser(usernameOrEmail string) (user.UserPersonDetails, error) {
	return m.findUserResult, m.findUserErr
}

func (m *MockUserService) FindAuthUser(username string) (*user.AuthUser, error) {
	return m.authUser, m.authUserErr
}

func (m *MockUserService) FindAuthUsersByEmail(email string) ([]*user.AuthUser, error) {
	return m.usersByEmail, m.usersByEmailErr
}

func (m *MockUserService) EnableUser(ctx context.Context, username, adminUsername string, adminAuthorities []string) error {
	m.enableCalls = append(m.enableCalls, changeCall{username, adminUsername, adminAuthorities})
	return m.changeErr
}

func (m *MockUserService) DisableUser(ctx context.Context, username, adminUsername string, adminAuthorities []string) error {
	m.disableCalls = append(m.disableCalls, changeCall{username, adminUsername, adminAuthorities})
	return m.changeErr
}

var _ = Describe("User Handler", func() {
	var (
		mockService *MockUserService
		handler     *user.Handler
		router      *chi.Mux
		admin       *auth.User
	)

	serve := func(method, target string, withAdmin bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, nil)
		if withAdmin {
			req = req.WithContext(auth.ContextWithUser(req.Context(), admin))
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	BeforeEach(func() {
		mockService = &MockUserService{}
		handler = user.NewHandler(mockService)
		admin = &auth.User{
			ID:          1,
			Username:    "AUTH_ADM",
			Name:        "Auth Admin",
			Enabled:     true,
			Authorities: []string{user.RoleMaintainUsers},
		}

		router = chi.NewRouter()
		router.Get("/users/me", handler.GetCurrentUser)
		router.Get("/users/{username}", handler.GetUser)
		router.Get("/authusers", handler.SearchAuthUsersByEmail)
		router.Get("/authusers/{username}", handler.GetAuthUser)
		router.Put("/authusers/{username}/enable", handler.EnableUser)
		router.Put("/authusers/{username}/disable", handler.DisableUser)
	})

	Describe("GetUser", func() {
		Context("when the user resolves", func() {
			BeforeEach(func() {
				mockService.findUserResult = &user.AuthUser{
					Username: "BOB",
					Name:     "Bob Builder",
					Enabled:  true,
				}
			})

			It("should return the identity summary", func() {
				rec := serve(http.MethodGet, "/users/bob", false)
				Expect(rec.Code).To(Equal(http.StatusOK))

				var body user.UserDetail
				Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
				Expect(body.Username).To(Equal("BOB"))
				Expect(body.Active).To(BeTrue())
				Expect(body.AuthSource).To(Equal("auth"))
			})
		})

		Context("when the user is unknown", func() {
			BeforeEach(func() {
				mockService.findUserErr = &user.NotFoundError{Username: "BOB"}
			})

			It("should return 404 with the domain message", func() {
				rec := serve(http.MethodGet, "/users/bob", false)
				Expect(rec.Code).To(Equal(http.StatusNotFound))
				Expect(rec.Body.String()).To(ContainSubstring("User not found with username BOB"))
				Expect(rec.Body.String()).To(ContainSubstring("USER_NOT_FOUND"))
			})
		})

		Context("when resolution fails", func() {
			BeforeEach(func() {
				mockService.findUserErr = errors.New("database error")
			})

			It("should return 500 without leaking the cause", func() {
				rec := serve(http.MethodGet, "/users/bob", false)
				Expect(rec.Code).To(Equal(http.StatusInternalServerError))
				Expect(rec.Body.String()).NotTo(ContainSubstring("database error"))
			})
		})
	})

	Describe("GetCurrentUser", func() {
		BeforeEach(func() {
			mockService.authUser = &user.AuthUser{Username: "AUTH_ADM", Name: "Auth Admin", Enabled: true}
		})

		It("should return the acting administrator", func() {
			rec := serve(http.MethodGet, "/users/me", true)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var body user.AuthUserDetail
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body.Username).To(Equal("AUTH_ADM"))
		})

		It("should return 401 without an authenticated admin", func() {
			rec := serve(http.MethodGet, "/users/me", false)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("GetAuthUser", func() {
		Context("when the record exists", func() {
			BeforeEach(func() {
				mockService.authUser = &user.AuthUser{
					Username:    "AUTH_TEST_USER",
					Email:       "test.user@justice.gov.uk",
					Enabled:     true,
					Groups:      []user.Group{{Code: "SITE_1_GROUP_1"}},
					Authorities: []user.Authority{{RoleCode: "ROLE_OTHER"}},
				}
			})

			It("should return group and role codes", func() {
				rec := serve(http.MethodGet, "/authusers/auth_test_user", false)
				Expect(rec.Code).To(Equal(http.StatusOK))

				var body user.AuthUserDetail
				Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
				Expect(body.Groups).To(Equal([]string{"SITE_1_GROUP_1"}))
				Expect(body.Authorities).To(Equal([]string{"ROLE_OTHER"}))
			})
		})

		Context("when the record is missing", func() {
			BeforeEach(func() {
				mockService.authUserErr = &user.NotFoundError{Username: "NOBODY"}
			})

			It("should return 404", func() {
				rec := serve(http.MethodGet, "/authusers/nobody", false)
				Expect(rec.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("SearchAuthUsersByEmail", func() {
		It("should return matching users", func() {
			mockService.usersByEmail = []*user.AuthUser{
				{Username: "USER_A", Email: "shared@somewhere"},
				{Username: "USER_B", Email: "shared@somewhere"},
			}

			rec := serve(http.MethodGet, "/authusers?email=shared@somewhere", false)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var body []user.AuthUserDetail
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body).To(HaveLen(2))
			Expect(body[0].Username).To(Equal("USER_A"))
		})

		It("should return an empty array for no matches", func() {
			mockService.usersByEmail = []*user.AuthUser{}

			rec := serve(http.MethodGet, "/authusers?email=nobody@nowhere", false)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring("[]"))
		})

		It("should reject a missing email parameter", func() {
			rec := serve(http.MethodGet, "/authusers", false)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("email is required"))
		})

		It("should reject a malformed email", func() {
			rec := serve(http.MethodGet, "/authusers?email=not-an-email", false)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("EnableUser", func() {
		It("should return 204 and pass the admin identity through", func() {
			rec := serve(http.MethodPut, "/authusers/auth_test_user/enable", true)
			Expect(rec.Code).To(Equal(http.StatusNoContent))
			Expect(mockService.enableCalls).To(HaveLen(1))
			Expect(mockService.enableCalls[0].Username).To(Equal("auth_test_user"))
			Expect(mockService.enableCalls[0].AdminUsername).To(Equal("AUTH_ADM"))
			Expect(mockService.enableCalls[0].Authorities).To(Equal([]string{user.RoleMaintainUsers}))
		})

		It("should return 401 without an authenticated admin", func() {
			rec := serve(http.MethodPut, "/authusers/auth_test_user/enable", false)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(mockService.enableCalls).To(BeEmpty())
		})

		It("should map a group relationship refusal to 403", func() {
			mockService.changeErr = &user.GroupRelationshipError{
				Username: "AUTH_TEST_USER",
				Reason:   "User not with your groups",
			}

			rec := serve(http.MethodPut, "/authusers/auth_test_user/enable", true)
			Expect(rec.Code).To(Equal(http.StatusForbidden))
			Expect(rec.Body.String()).To(ContainSubstring("GROUP_RELATIONSHIP_VIOLATION"))
		})

		It("should map an unknown user to 404", func() {
			mockService.changeErr = &user.NotFoundError{Username: "nobody"}

			rec := serve(http.MethodPut, "/authusers/nobody/enable", true)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("DisableUser", func() {
		It("should return 204 on success", func() {
			rec := serve(http.MethodPut, "/authusers/auth_test_user/disable", true)
			Expect(rec.Code).To(Equal(http.StatusNoContent))
			Expect(mockService.disableCalls).To(HaveLen(1))
		})
	})
})
