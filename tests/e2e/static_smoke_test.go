//go:build e2e

package e2e_test

import (
	"net/http"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

const (
	noStore   = "no-store, no-cache, must-revalidate, max-age=0"
	immutable = "public, max-age=31536000, immutable"
)

var _ = ginkgo.Describe("Static Smoke", func() {
	ginkgo.It("serves the static root", func() {
		resp, err := client.Get(suiteCtx, "/")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusOK))
		gomega.Expect(resp.Header().Get("Cache-Control")).Should(gomega.Equal(noStore))
	})

	ginkgo.It("404 for a missing file", func() {
		resp, err := client.Get(suiteCtx, "/this/file/does/not/exist.js")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusNotFound))
		gomega.Expect(resp.Header().Get("Cache-Control")).Should(gomega.Equal(noStore))
	})

	ginkgo.It("png directory is immutable", func() {
		resp, err := client.Head(suiteCtx, "/png/does-not-exist.png")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		gomega.Expect(resp.Header().Get("Cache-Control")).Should(gomega.Equal(immutable))
	})
})
