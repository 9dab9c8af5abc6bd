package logging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
)

func TestLoadLevel(t *testing.T) {
	tests := []struct {
		name          string
		level         string
		expectedLevel logrus.Level
		expectedError string
	}{
		{
			name:          "default level",
			level:         "",
			expectedLevel: logrus.InfoLevel,
		},
		{
			name:          "debug level",
			level:         "debug",
			expectedLevel: logrus.DebugLevel,
		},
		{
			name:          "invalid level falls back to info",
			level:         "verbose",
			expectedLevel: logrus.InfoLevel,
			expectedError: "invalid LOG_LEVEL 'verbose'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			t.Setenv("LOG_LEVEL", tt.level)

			err := LoadLevel()

			if tt.expectedError == "" {
				g.Expect(err).NotTo(HaveOccurred())
			} else {
				g.Expect(err).To(HaveOccurred())
				g.Expect(err.Error()).To(ContainSubstring(tt.expectedError))
			}
			g.Expect(logrus.GetLevel()).To(Equal(tt.expectedLevel))
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Run("returns stored logger", func(t *testing.T) {
		g := NewWithT(t)

		logger := logrus.WithField("test", "value")
		ctx := IntoContext(context.Background(), logger)

		g.Expect(FromContext(ctx)).To(BeIdenticalTo(logger))
	})

	t.Run("falls back to standard logger", func(t *testing.T) {
		g := NewWithT(t)

		g.Expect(FromContext(context.Background())).To(BeIdenticalTo(logrus.StandardLogger()))
	})
}

func TestFromRequest(t *testing.T) {
	g := NewWithT(t)

	logger := logrus.WithField("test", "value")
	r := httptest.NewRequest(http.MethodGet, "/show-data/", nil)
	r = IntoRequest(r, logger)

	g.Expect(FromRequest(r)).To(BeIdenticalTo(logger))
}

func TestWithRequestFields(t *testing.T) {
	g := NewWithT(t)

	r := httptest.NewRequest(http.MethodGet, "http://localhost:3000/oauth2-callback", nil)
	logger := WithRequestFields(r)

	entry, ok := logger.(*logrus.Entry)
	g.Expect(ok).To(BeTrue())
	g.Expect(entry.Data).To(HaveKey("requestID"))
	g.Expect(entry.Data["requestID"]).NotTo(BeEmpty())

	httpFields, ok := entry.Data["http"].(logrus.Fields)
	g.Expect(ok).To(BeTrue())
	g.Expect(httpFields["method"]).To(Equal(http.MethodGet))
	g.Expect(httpFields["path"]).To(Equal("/oauth2-callback"))
	g.Expect(httpFields["host"]).To(Equal("localhost:3000"))

	// Each request gets its own ID.
	other, ok := WithRequestFields(r).(*logrus.Entry)
	g.Expect(ok).To(BeTrue())
	g.Expect(other.Data["requestID"]).NotTo(Equal(entry.Data["requestID"]))
}
