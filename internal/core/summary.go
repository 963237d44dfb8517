package core

// Labels attached to derived summaries in place of an entry name.
const (
	DailyTotalLabel    = "Daily Total"
	WeeklyAverageLabel = "Weekly Average"
)

// Summary is a derived aggregate over a set of entries. It is never
// persisted. Values are rounded to two decimals at construction.
type Summary struct {
	Label    string
	Protein  float64
	Fat      float64
	Carbs    float64
	Calories float64
}
