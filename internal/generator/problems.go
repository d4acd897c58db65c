package generator

import (
	"context"
	"strings"
)

// Base candidate set. Order is fixed; the list is never sorted by severity.
var problemTemplates = []Problem{
	{
		ID:          1,
		Title:       "Harga Tidak Transparan dan Sering Berubah",
		Description: "Pelanggan frustrasi karena tidak tahu harga pasti dari awal, seringkali ada biaya tersembunyi yang muncul belakangan.",
		Severity:    4,
	},
	{
		ID:          2,
		Title:       "Kualitas Tidak Konsisten dan Mengecewakan",
		Description: "Produk atau layanan yang diterima tidak sesuai ekspektasi, kualitas naik-turun dan tidak bisa diandalkan.",
		Severity:    5,
	},
	{
		ID:          3,
		Title:       "Proses Pemesanan Ribet dan Lama",
		Description: "Terlalu banyak step untuk memesan, harus bolak-balik, dan menunggu lama tanpa kepastian.",
		Severity:    3,
	},
	{
		ID:          4,
		Title:       "Customer Service Sulit Dihubungi",
		Description: "Ketika ada masalah, tidak ada yang bisa dihubungi. CS tidak responsif dan tidak membantu menyelesaikan masalah.",
		Severity:    4,
	},
	{
		ID:          5,
		Title:       "Tidak Ada Garansi atau Jaminan",
		Description: "Takut rugi karena tidak ada garansi. Jika produk rusak atau tidak sesuai, tidak ada perlindungan untuk konsumen.",
		Severity:    3,
	},
}

// Keyword rule table for domain-specific overrides. Matching is naive
// substring matching on the product name and target market; known limitation,
// not classification.
var (
	foodKeywords = []string{
		"makanan", "kuliner", "nasi", "gudeg", "sambal", "kue",
		"minuman", "kopi", "catering", "warung", "resto",
	}
	courseKeywords = []string{
		"kursus", "kelas", "pelatihan", "bimbel", "les privat",
	}
)

func matchesAny(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// Problems derives the 5 candidate pain points for the product. Same input
// always yields the same output.
func (g *Generator) Problems(ctx context.Context, in ProductInput) ([]Problem, error) {
	if err := g.simulateLatency(ctx); err != nil {
		return nil, err
	}

	name := strings.ToLower(in.ProductName)
	market := strings.ToLower(in.TargetMarket)

	isFood := matchesAny(name, foodKeywords) || matchesAny(market, foodKeywords)
	isCourse := matchesAny(name, courseKeywords) || strings.Contains(market, "belajar")

	problems := make([]Problem, len(problemTemplates))
	copy(problems, problemTemplates)

	if isFood {
		problems[0].Title = "Harga Makanan Mahal Tapi Porsi Kecil"
		problems[0].Description = "Pelanggan kecewa karena harga mahal tapi porsi tidak sesuai, rasa tidak istimewa, dan tidak worth it."
		problems[1].Title = "Rasa Tidak Konsisten dan Higienis Diragukan"
		problems[1].Description = "Rasa makanan berubah-ubah, kadang enak kadang tidak. Kebersihan tempat dan proses masak juga dipertanyakan."
	} else if isCourse {
		problems[0].Title = "Biaya Kursus Mahal Tapi Hasilnya Tidak Jelas"
		problems[0].Description = "Sudah bayar mahal untuk kursus tapi tidak ada jaminan bisa menguasai skill atau mendapat pekerjaan."
		problems[1].Title = "Materi Kursus Ketinggalan Zaman"
		problems[1].Description = "Materi yang diajarkan sudah tidak relevan dengan kebutuhan industri saat ini, waste time and money."
	}

	return problems, nil
}
