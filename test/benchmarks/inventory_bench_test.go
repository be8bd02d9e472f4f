package benchmarks

import (
	"io"
	"testing"

	"github.com/google/uuid"

	"github.com/ammerola/canteen-be/internal/adapters/spreadsheet"
	"github.com/ammerola/canteen-be/internal/core/classifier"
	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
	"github.com/ammerola/canteen-be/internal/core/report"
	"github.com/ammerola/canteen-be/internal/pkg/clock"
)

func BenchmarkClassification(b *testing.B) {
	canteenID := uuid.New()
	c := classifier.New(clock.Fixed(benchNow))

	for _, size := range []struct {
		name string
		n    int
	}{
		{"Small_100", 100},
		{"Medium_1000", 1000},
		{"Large_10000", 10000},
	} {
		items := generateInventory(canteenID, size.n)
		b.Run(size.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = c.Inventory(items)
			}
		})
	}
}

func BenchmarkDashboard(b *testing.B) {
	canteenID := uuid.New()
	c := classifier.New(clock.Fixed(benchNow))
	in := report.Input{
		CanteenID: canteenID.String(),
		Items:     c.Inventory(generateInventory(canteenID, 1000)),
		Orders:    generateOrders(canteenID, 2000),
		Feedback:  generateFeedback(canteenID, 500),
		Now:       benchNow,
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = report.BuildDashboard(in)
	}
}

func BenchmarkNeedingAttention(b *testing.B) {
	canteenID := uuid.New()
	items := classifier.New(clock.Fixed(benchNow)).Inventory(generateInventory(canteenID, 5000))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = classifier.NeedingAttention(items)
	}
}

func BenchmarkExport(b *testing.B) {
	canteenID := uuid.New()
	items := classifier.New(clock.Fixed(benchNow)).Inventory(generateInventory(canteenID, 1000))
	export := &ports.InventoryExport{
		CanteenName: "Bench Canteen",
		GeneratedAt: benchNow,
		Summary:     report.SummarizeInventory(items),
		Items:       items,
	}

	for _, format := range []domain.ExportFormat{domain.ExportJSON, domain.ExportXLSX} {
		b.Run(string(format), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if err := spreadsheet.Encode(io.Discard, format, export); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
