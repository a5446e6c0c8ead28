//go:build e2e

package e2e_test

import (
	"encoding/json"
	"net/http"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Changelog Smoke", func() {
	ginkgo.It("HEAD is not allowed", func() {
		resp, err := client.Head(suiteCtx, "/api/changelog")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusMethodNotAllowed))
		gomega.Expect(resp.Header().Get("Allow")).Should(gomega.Equal(http.MethodGet))
	})

	ginkgo.It("GET answers with JSON", func() {
		resp, err := client.Get(suiteCtx, "/api/changelog")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		gomega.Expect(resp.Header().Get("Access-Control-Allow-Origin")).Should(gomega.Equal("*"))
		gomega.Expect(json.Valid(resp.Body())).Should(gomega.BeTrue())

		if resp.StatusCode() != http.StatusOK {
			var errResp struct {
				Error string `json:"error"`
			}
			gomega.Expect(json.Unmarshal(resp.Body(), &errResp)).Should(gomega.Succeed())
			gomega.Expect(errResp.Error).ShouldNot(gomega.BeEmpty())
		}
	})
})
