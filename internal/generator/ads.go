package generator

import (
	"context"
	"fmt"
	"strings"
)

// Ads builds the full ad-variant set: 10 Meta ads and 10 Google ads, one per
// persuasion angle.
func (g *Generator) Ads(ctx context.Context, in ProductInput, problem Problem) (*AdBundle, error) {
	if err := g.simulateLatency(ctx); err != nil {
		return nil, err
	}

	titleLower := strings.ToLower(problem.Title)

	metaAds := []MetaAd{
		{
			Type:        "Awareness",
			Headline:    fmt.Sprintf("STOP! Jangan Sampai Kena %s", problem.Title),
			Description: fmt.Sprintf("Ribuan orang sudah terjebak. %s hadir sebagai solusi yang tepat untuk %s. %s", in.ProductName, in.TargetMarket, in.Benefits),
			CTA:         "Pelajari Lebih Lanjut",
		},
		{
			Type:        "Problem-Solution",
			Headline:    fmt.Sprintf("Lelah dengan %s?", problem.Title),
			Description: fmt.Sprintf("Kami mengerti frustrasi Anda. %s diciptakan khusus untuk menyelesaikan masalah ini. Sudah 1000+ pelanggan yang puas!", in.ProductName),
			CTA:         "Coba Sekarang",
		},
		{
			Type:        "Social Proof",
			Headline:    fmt.Sprintf("Mengapa 1000+ Orang Pilih %s?", in.ProductName),
			Description: fmt.Sprintf("Rating 4.8/5 bukan kebetulan. %s. Khusus untuk %s yang menginginkan hasil terbaik.", in.Benefits, in.TargetMarket),
			CTA:         "Lihat Testimoni",
		},
		{
			Type:        "Urgency",
			Headline:    fmt.Sprintf("Promo Terbatas - %s", in.ProductName),
			Description: fmt.Sprintf("Jangan sampai menyesal kemudian. Hanya hari ini, dapatkan solusi terbaik untuk %s. Limited stock!", titleLower),
			CTA:         "Pesan Sekarang",
		},
		{
			Type:        "Benefit-Focused",
			Headline:    in.Benefits,
			Description: fmt.Sprintf("Inilah yang membedakan %s dari yang lain. Khusus untuk %s yang serius ingin hasil maksimal.", in.ProductName, in.TargetMarket),
			CTA:         "Dapatkan Sekarang",
		},
		{
			Type:        "Question Hook",
			Headline:    fmt.Sprintf("Masih Mau Terjebak %s?", problem.Title),
			Description: fmt.Sprintf("Atau siap beralih ke solusi yang benar? %s adalah jawabannya. %s", in.ProductName, in.Benefits),
			CTA:         "Ganti Sekarang",
		},
		{
			Type:        "Comparison",
			Headline:    fmt.Sprintf("%s vs Kompetitor Lain", in.ProductName),
			Description: fmt.Sprintf("Bandingkan sendiri: kami memberikan %s. Kompetitor? Masih stuck dengan cara lama yang bikin %s.", in.Benefits, titleLower),
			CTA:         "Bandingkan Sekarang",
		},
		{
			Type:        "Story",
			Headline:    "Kisah Nyata: Dari Frustasi ke Sukses",
			Description: fmt.Sprintf(`"Dulu saya juga victim %s. Sampai menemukan %s. Sekarang %s!" - Testimoni Pelanggan`, problem.Title, in.ProductName, in.Benefits),
			CTA:         "Baca Kisah Lengkap",
		},
		{
			Type:        "Fear-Based",
			Headline:    "Berapa Lama Lagi Anda Mau Rugi?",
			Description: fmt.Sprintf("Setiap hari tunda keputusan = kerugian makin besar. %s sudah terbukti menyelesaikan %s.", in.ProductName, titleLower),
			CTA:         "Stop Kerugian Sekarang",
		},
		{
			Type:        "Guarantee",
			Headline:    "Garansi 100% Puas atau Uang Kembali",
			Description: fmt.Sprintf("Tidak ada risiko! Coba %s selama 30 hari. Jika tidak puas dengan %s, uang kembali full!", in.ProductName, in.Benefits),
			CTA:         "Coba Tanpa Risiko",
		},
	}

	googleAds := []GoogleAd{
		{
			Type:        "Search",
			Headline1:   fmt.Sprintf("%s Terpercaya", in.ProductName),
			Headline2:   fmt.Sprintf("Solusi %s", problem.Title),
			Description: fmt.Sprintf("%s. Garansi puas atau uang kembali. Hubungi sekarang!", in.Benefits),
		},
		{
			Type:        "Search",
			Headline1:   fmt.Sprintf("Cara Mengatasi %s", problem.Title),
			Headline2:   fmt.Sprintf("%s #1", in.ProductName),
			Description: "Sudah 1000+ pelanggan puas. Rating 4.8/5. Konsultasi gratis hari ini!",
		},
		{
			Type:        "Display",
			Headline1:   fmt.Sprintf("Stop %s!", problem.Title),
			Headline2:   fmt.Sprintf("%s Solusinya", in.ProductName),
			Description: fmt.Sprintf("Khusus %s. %s. Promo terbatas!", in.TargetMarket, in.Benefits),
		},
		{
			Type:        "Shopping",
			Headline1:   fmt.Sprintf("%s Original", in.ProductName),
			Headline2:   "Kualitas Terjamin",
			Description: fmt.Sprintf("%s. Free konsultasi. Garansi resmi!", in.Benefits),
		},
		{
			Type:        "Local",
			Headline1:   fmt.Sprintf("%s Terdekat", in.ProductName),
			Headline2:   "Pelayanan 24/7",
			Description: fmt.Sprintf("Solusi cepat untuk %s. Call center siaga!", titleLower),
		},
		{
			Type:        "Remarketing",
			Headline1:   fmt.Sprintf("Masih Mikir %s?", in.ProductName),
			Headline2:   "Jangan Sampai Kehabisan",
			Description: fmt.Sprintf("Stock terbatas! %s. Pesan sebelum terlambat!", in.Benefits),
		},
		{
			Type:        "Competitor",
			Headline1:   "Alternatif Terbaik",
			Headline2:   fmt.Sprintf("%s Juara", in.ProductName),
			Description: fmt.Sprintf("Mengapa pilih yang biasa-biasa saja? %s!", in.Benefits),
		},
		{
			Type:        "Brand",
			Headline1:   fmt.Sprintf("%s Official", in.ProductName),
			Headline2:   "Website Resmi",
			Description: fmt.Sprintf("%s. Trusted by 1000+ customers. Order now!", in.Benefits),
		},
		{
			Type:        "Generic",
			Headline1:   fmt.Sprintf("Solusi %s", problem.Title),
			Headline2:   "Terbukti Efektif",
			Description: fmt.Sprintf("%s: %s. Try risk-free!", in.ProductName, in.Benefits),
		},
		{
			Type:        "Long-tail",
			Headline1:   fmt.Sprintf("%s untuk", in.ProductName),
			Headline2:   in.TargetMarket,
			Description: fmt.Sprintf("Spesialisasi mengatasi %s. Konsultasi gratis!", titleLower),
		},
	}

	return &AdBundle{MetaAds: metaAds, GoogleAds: googleAds}, nil
}
