package user_test

import (
	"errors"
	"log/slog"
	"os"

	"github.com/frahmantamala/user-admin/internal/user"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MaintainUserCheck", func() {
	var (
		mockRepo *MockRepository
		check    *user.MaintainUserCheck
		target   *user.AuthUser
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		testLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		check = user.NewMaintainUserCheck(mockRepo, testLogger)
		target = &user.AuthUser{
			Username: "AUTH_TEST_USER",
			Groups:   []user.Group{{Code: "SITE_1_GROUP_1"}},
		}
	})

	Context("when the admin holds the maintain users role", func() {
		It("should allow without loading the admin record", func() {
			err := check.EnsureUserLoggedInUserRelationship("AUTH_ADM", []string{user.RoleMaintainUsers}, target)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should win even when the group manager role is also held", func() {
			authorities := []string{user.RoleGroupManager, user.RoleMaintainUsers}
			err := check.EnsureUserLoggedInUserRelationship("AUTH_ADM", authorities, target)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Context("when the admin is a group manager", func() {
		It("should allow when a group is shared", func() {
			mockRepo.AddUser(&user.AuthUser{
				Username: "AUTH_GROUP_MANAGER",
				Groups:   []user.Group{{Code: "SITE_1_GROUP_1"}, {Code: "SITE_1_GROUP_2"}},
			})

			err := check.EnsureUserLoggedInUserRelationship("AUTH_GROUP_MANAGER", []string{user.RoleGroupManager}, target)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should load the admin record by normalized username", func() {
			mockRepo.AddUser(&user.AuthUser{
				Username: "AUTH_GROUP_MANAGER",
				Groups:   []user.Group{{Code: "SITE_1_GROUP_1"}},
			})

			err := check.EnsureUserLoggedInUserRelationship("  auth_group_manager ", []string{user.RoleGroupManager}, target)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should refuse when no group is shared", func() {
			mockRepo.AddUser(&user.AuthUser{
				Username: "AUTH_GROUP_MANAGER",
				Groups:   []user.Group{{Code: "SITE_2_GROUP_1"}},
			})

			err := check.EnsureUserLoggedInUserRelationship("AUTH_GROUP_MANAGER", []string{user.RoleGroupManager}, target)
			Expect(err).To(HaveOccurred())

			var relErr *user.GroupRelationshipError
			Expect(errors.As(err, &relErr)).To(BeTrue())
			Expect(relErr.Reason).To(Equal("User not with your groups"))
			Expect(err.Error()).To(Equal("Unable to maintain user: AUTH_TEST_USER with reason: User not with your groups"))
		})

		It("should refuse when the admin has no groups", func() {
			mockRepo.AddUser(&user.AuthUser{Username: "AUTH_GROUP_MANAGER"})

			err := check.EnsureUserLoggedInUserRelationship("AUTH_GROUP_MANAGER", []string{user.RoleGroupManager}, target)
			Expect(err).To(HaveOccurred())

			var relErr *user.GroupRelationshipError
			Expect(errors.As(err, &relErr)).To(BeTrue())
		})

		It("should refuse when the admin record is missing", func() {
			err := check.EnsureUserLoggedInUserRelationship("GHOST_MANAGER", []string{user.RoleGroupManager}, target)
			Expect(err).To(HaveOccurred())

			var relErr *user.GroupRelationshipError
			Expect(errors.As(err, &relErr)).To(BeTrue())
			Expect(relErr.Reason).To(Equal("User not with your groups"))
		})

		It("should propagate repository failures", func() {
			mockRepo.SetShouldFail(true, errors.New("database error"))

			err := check.EnsureUserLoggedInUserRelationship("AUTH_GROUP_MANAGER", []string{user.RoleGroupManager}, target)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("database error"))

			var relErr *user.GroupRelationshipError
			Expect(errors.As(err, &relErr)).To(BeFalse())
		})
	})

	Context("when the admin holds neither maintain role", func() {
		It("should refuse with a missing role reason", func() {
			err := check.EnsureUserLoggedInUserRelationship("SOMEONE", []string{"ROLE_OTHER"}, target)
			Expect(err).To(HaveOccurred())

			var relErr *user.GroupRelationshipError
			Expect(errors.As(err, &relErr)).To(BeTrue())
			Expect(relErr.Reason).To(Equal("Missing maintain user role"))
		})

		It("should refuse with no authorities at all", func() {
			err := check.EnsureUserLoggedInUserRelationship("SOMEONE", nil, target)
			Expect(err).To(HaveOccurred())
		})
	})
})
