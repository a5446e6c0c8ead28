//go:build e2e

package e2e_test

import (
	"net/http"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Assets Smoke", func() {
	const missingAsset = "/data/sprites/e2e-missing-asset.bmp.lzma"

	ginkgo.It("missing asset is redirected or not found", func() {
		resp, err := client.Get(suiteCtx, missingAsset)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		switch resp.StatusCode() {
		case http.StatusFound:
			gomega.Expect(resp.Header().Get("Location")).Should(gomega.HaveSuffix("/sprites/e2e-missing-asset.bmp.lzma"))
		default:
			gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusNotFound))
		}
	})

	ginkgo.It("GET and HEAD agree on the status", func() {
		getResp, err := client.Get(suiteCtx, missingAsset)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		headResp, err := client.Head(suiteCtx, missingAsset)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		gomega.Expect(headResp.StatusCode()).Should(gomega.Equal(getResp.StatusCode()))
		gomega.Expect(headResp.Body()).Should(gomega.BeEmpty())
	})
})
