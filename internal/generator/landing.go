package generator

import (
	"context"
	"fmt"
	"strings"
)

func (g *Generator) LandingPage(ctx context.Context, in ProductInput, problem Problem) (*LandingPage, error) {
	if err := g.simulateLatency(ctx); err != nil {
		return nil, err
	}

	titleLower := strings.ToLower(problem.Title)

	return &LandingPage{
		Headline:    fmt.Sprintf("%s - Solusi Terbaik untuk %s", in.ProductName, in.TargetMarket),
		Subheadline: fmt.Sprintf("Sudah lelah dengan %s? Saatnya beralih ke cara yang BENAR!", titleLower),
		NewWay: fmt.Sprintf(
			"Cara baru yang revolusioner: %s. Tidak seperti yang lain, kami fokus pada kepuasan dan hasil nyata untuk pelanggan.",
			in.Benefits),
		HowItWorks: []string{
			"Konsultasi gratis untuk memahami kebutuhan spesifik Anda",
			"Proses yang transparan dengan timeline yang jelas",
			"Eksekusi berkualitas tinggi dengan monitoring ketat",
			"Support penuh hingga Anda benar-benar puas dengan hasilnya",
		},
		SocialProof: "Sudah dipercaya 1000+ pelanggan dengan rating 4.8/5",
		CTA:         "Dapatkan Sekarang - Garansi 100% Puas atau Uang Kembali!",
	}, nil
}
