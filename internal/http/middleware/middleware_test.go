package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/arthUFO12/CivicProject/common/logger"
	"github.com/arthUFO12/CivicProject/internal/http/middleware"
)

var _ = Describe("RequestID", func() {
	var (
		router *gin.Engine
		seenID *string
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		seenID = nil
		router = gin.New()
		router.Use(middleware.RequestID())
		router.GET("/ping", func(c *gin.Context) {
			seenID = logger.GetLogFields(c.Request.Context()).RequestID
			c.Status(http.StatusOK)
		})
	})

	It("echoes the caller's request id", func() {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal("abc-123"))
		Expect(seenID).NotTo(BeNil())
		Expect(*seenID).To(Equal("abc-123"))
	})

	It("assigns an id when none is sent", func() {
		w := httptest.NewRecorder()

		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assigned := w.Header().Get(middleware.RequestIDHeader)
		Expect(assigned).To(MatchRegexp(`^\d+$`))
		Expect(*seenID).To(Equal(assigned))
	})
})

var _ = Describe("Recovery", func() {
	It("turns a panic into a 500", func() {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.Use(middleware.Recovery(), middleware.Logger())
		router.GET("/boom", func(*gin.Context) {
			panic("boom")
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(MatchJSON(`{"error":"internal server error"}`))
	})
})
