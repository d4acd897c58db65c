package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdsBundleCounts(t *testing.T) {
	g := &Generator{}
	in := ProductInput{
		ProductName:  "Toko Kue Lebaran",
		TargetMarket: "Keluarga muda di Bandung",
		Benefits:     "Kue fresh dipanggang setiap hari",
	}
	problem := Problem{ID: 1, Title: "Harga Tidak Transparan dan Sering Berubah", Severity: 4}

	bundle, err := g.Ads(context.Background(), in, problem)
	require.NoError(t, err)

	assert.Len(t, bundle.MetaAds, 10)
	assert.Len(t, bundle.GoogleAds, 10)

	for _, ad := range bundle.MetaAds {
		assert.NotEmpty(t, ad.Type)
		assert.NotEmpty(t, ad.Headline)
		assert.NotEmpty(t, ad.Description)
		assert.NotEmpty(t, ad.CTA)
	}
	for _, ad := range bundle.GoogleAds {
		assert.NotEmpty(t, ad.Type)
		assert.NotEmpty(t, ad.Headline1)
		assert.NotEmpty(t, ad.Headline2)
		assert.NotEmpty(t, ad.Description)
	}
}

func TestAdsAnglesAreDistinct(t *testing.T) {
	g := &Generator{}
	bundle, err := g.Ads(context.Background(), ProductInput{
		ProductName:  "Laundry Kilat 24 Jam",
		TargetMarket: "Anak kos di Depok",
		Benefits:     "Selesai dalam 3 jam, antar jemput gratis",
	}, Problem{ID: 4, Title: "Customer Service Sulit Dihubungi", Severity: 2})
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, ad := range bundle.MetaAds {
		assert.False(t, seen[ad.Type], "tipe meta ad duplikat: %s", ad.Type)
		seen[ad.Type] = true
	}
}

func TestRenderHTMLContainsContent(t *testing.T) {
	g := &Generator{}
	in := ProductInput{
		ProductName:  "Bimbel Masuk PTN",
		TargetMarket: "Siswa kelas 12 di Semarang",
		Benefits:     "Pengajar alumni PTN favorit",
	}
	page, err := g.LandingPage(context.Background(), in, Problem{ID: 1, Title: "Biaya Kursus Mahal Tapi Hasilnya Tidak Jelas", Severity: 4})
	require.NoError(t, err)

	html := RenderHTML(in, *page)

	assert.True(t, strings.HasPrefix(strings.TrimSpace(html), "<!DOCTYPE html>"))
	assert.Contains(t, html, in.ProductName)
	assert.Contains(t, html, page.Headline)
	assert.Contains(t, html, page.CTA)
	for _, step := range page.HowItWorks {
		assert.Contains(t, html, step)
	}
}
