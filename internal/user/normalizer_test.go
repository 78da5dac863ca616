package user_test

import (
	"github.com/frahmantamala/user-admin/internal/user"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Normalization", func() {
	Describe("NormalizeUsername", func() {
		It("should uppercase the username", func() {
			Expect(user.NormalizeUsername("bob")).To(Equal("BOB"))
		})

		It("should trim surrounding whitespace", func() {
			Expect(user.NormalizeUsername("   bob   ")).To(Equal("BOB"))
		})

		It("should leave an already normalized username alone", func() {
			Expect(user.NormalizeUsername("AUTH_ADM")).To(Equal("AUTH_ADM"))
		})

		It("should keep inner whitespace", func() {
			Expect(user.NormalizeUsername(" bob smith ")).To(Equal("BOB SMITH"))
		})
	})

	Describe("NormalizeEmail", func() {
		It("should lowercase the address", func() {
			Expect(user.NormalizeEmail("Some.User@SOMEWHERE")).To(Equal("some.user@somewhere"))
		})

		It("should trim surrounding whitespace", func() {
			Expect(user.NormalizeEmail("  some.user@somewhere  ")).To(Equal("some.user@somewhere"))
		})

		It("should fold left single quotes to apostrophes", func() {
			Expect(user.NormalizeEmail("some.u‘ser@somewhere")).To(Equal("some.u'ser@somewhere"))
		})

		It("should fold right single quotes to apostrophes", func() {
			Expect(user.NormalizeEmail("some.u’ser@somewhere")).To(Equal("some.u'ser@somewhere"))
		})

		It("should fold modifier letter apostrophes", func() {
			Expect(user.NormalizeEmail("some.uʼser@somewhere")).To(Equal("some.u'ser@somewhere"))
		})

		It("should keep plain apostrophes", func() {
			Expect(user.NormalizeEmail("some.u'ser@somewhere")).To(Equal("some.u'ser@somewhere"))
		})
	})
})
