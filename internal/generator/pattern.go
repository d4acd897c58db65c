package generator

import (
	"context"
	"fmt"
	"strings"
)

// PatternInterrupt interpolates the product data and the chosen problem into
// the fixed provocation templates.
func (g *Generator) PatternInterrupt(ctx context.Context, in ProductInput, problem Problem) (*PatternInterrupt, error) {
	if err := g.simulateLatency(ctx); err != nil {
		return nil, err
	}

	titleLower := strings.ToLower(problem.Title)

	return &PatternInterrupt{
		MainMessage: fmt.Sprintf(
			`STOP! Jangan sampai Anda jadi korban selanjutnya dari "%s". Ribuan orang sudah terjebak dan mengalami kerugian besar. Saatnya buka mata tentang cara lama yang SALAH!`,
			problem.Title),

		OldWayProblems: []string{
			fmt.Sprintf("Cara lama: %s - ini sudah terbukti merugikan konsumen", titleLower),
			"Mindset lama: 'Yang penting murah' - padahal ujung-ujungnya keluar biaya lebih besar",
			"Kebiasaan buruk: tidak research dulu sebelum beli - akibatnya sering kecewa dan rugi",
			"Pola pikir salah: 'semua produk sama saja' - padahal kualitas sangat menentukan hasil",
		},

		NewReality: fmt.Sprintf(
			"Realitas yang harus Anda pahami SEKARANG: %s. Ini bukan sekedar produk biasa, tapi solusi yang benar-benar menyelesaikan masalah %s. Ribuan pelanggan kami sudah membuktikannya!",
			in.Benefits, titleLower),

		TransitionToSolution: fmt.Sprintf(
			"Jadi, daripada terus terjebak dengan cara lama yang SALAH dan merugikan, mengapa tidak beralih ke %s? Kami hadir khusus untuk %s yang sudah lelah dengan %s.",
			in.ProductName, in.TargetMarket, titleLower),
	}, nil
}
