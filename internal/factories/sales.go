package factories

import (
	"fmt"
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/marketlens/marketlens/internal/geo"
	"github.com/marketlens/marketlens/internal/models"
)

// Channel weights skew demo data the way the market actually looks:
// Talabat dominant, Keeta a new entrant.
var channelWeights = []struct {
	name   string
	weight float64
}{
	{"talabat", 0.42},
	{"deliveroo", 0.24},
	{"careem", 0.18},
	{"noon", 0.12},
	{"keeta", 0.04},
}

var cuisinePool = []string{
	"Indian", "Italian", "Japanese", "Lebanese", "Emirati",
	"Chinese", "American", "Thai", "Filipino", "Turkish",
}

type SalesFactory struct {
	rng   *rand.Rand
	fake  faker.Faker
	areas []string
	month string
	city  string
}

// NewSalesFactory builds a generator whose output is fully determined by
// seed; the faker shares the seed so dirty labels repeat too.
func NewSalesFactory(seed int64, month, city string) *SalesFactory {
	if city == "" {
		city = "Dubai"
	}
	return &SalesFactory{
		rng:   rand.New(rand.NewSource(seed)),
		fake:  faker.NewWithSeed(rand.NewSource(seed)),
		areas: geo.KnownAreas(),
		month: month,
		city:  city,
	}
}

// CreateRecord builds one plausible monthly sales row. Roughly one row in
// forty carries a garbage channel label, mirroring the dirty labels real
// warehouse loads contain; the pipeline is expected to drop those silently.
func (f *SalesFactory) CreateRecord() models.SalesRecord {
	channel := f.pickChannel()
	if f.rng.Intn(40) == 0 {
		channel = f.fake.Lorem().Word()
	}

	orders := float64(f.rng.Intn(4000) + 50)
	aov := 40.0 + f.rng.Float64()*80.0
	grossSales := orders * aov
	discountSpend := grossSales * (0.02 + f.rng.Float64()*0.10)
	adsSpend := grossSales * (0.01 + f.rng.Float64()*0.06)

	return models.SalesRecord{
		Channel:       channel,
		City:          f.city,
		Area:          f.areas[f.rng.Intn(len(f.areas))],
		Cuisine:       cuisinePool[f.rng.Intn(len(cuisinePool))],
		Period:        f.month,
		Orders:        orders,
		NetSales:      grossSales - discountSpend,
		GrossSales:    grossSales,
		AdsSpend:      adsSpend,
		DiscountSpend: discountSpend,
		AdsReturn:     adsSpend * (0.5 + f.rng.Float64()*4.0),
	}
}

// CreateRecords builds n records spread over the months ending at the
// factory's base month when monthsBack > 1.
func (f *SalesFactory) CreateRecords(n, monthsBack int) []models.SalesRecord {
	if monthsBack < 1 {
		monthsBack = 1
	}
	records := make([]models.SalesRecord, 0, n)
	for i := 0; i < n; i++ {
		rec := f.CreateRecord()
		rec.Period = f.shiftMonth(f.month, -f.rng.Intn(monthsBack))
		records = append(records, rec)
	}
	return records
}

func (f *SalesFactory) pickChannel() string {
	roll := f.rng.Float64()
	var cumulative float64
	for _, cw := range channelWeights {
		cumulative += cw.weight
		if roll < cumulative {
			return cw.name
		}
	}
	return channelWeights[len(channelWeights)-1].name
}

func (f *SalesFactory) shiftMonth(month string, delta int) string {
	var year, m int
	if _, err := fmt.Sscanf(month, "%d-%d", &year, &m); err != nil {
		return month
	}
	m += delta
	for m < 1 {
		m += 12
		year--
	}
	for m > 12 {
		m -= 12
		year++
	}
	return fmt.Sprintf("%04d-%02d", year, m)
}
