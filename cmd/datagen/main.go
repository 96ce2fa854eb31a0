// Command datagen emits a synthetic employee CSV for exercising the
// evaluation API. Profiles skew the population so the rule classifier
// has something to flag.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
)

var departments = []string{
	"Engineering", "Sales", "Marketing", "Finance", "HR", "Operations", "Customer Support",
}

var jobTitles = []string{
	"Analyst", "Specialist", "Engineer", "Manager", "Consultant", "Technician",
}

// Performance profile cases.
const (
	caseAverage = iota
	caseHighPerformer
	caseAtRisk
	caseUndertrained
	caseOverworked
	profileCount
)

func main() {
	count := flag.Int("count", 100, "number of employee rows to generate")
	seed := flag.Int64("seed", 1, "random seed for reproducible output")
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintln(os.Stderr, "create output:", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	rng := rand.New(rand.NewSource(*seed))
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"employee_id", "name", "department", "job_title",
		"tenure_years", "performance_score", "training_hours",
		"projects_handled", "satisfaction_score", "sick_leave_days",
	}
	if err := cw.Write(header); err != nil {
		fmt.Fprintln(os.Stderr, "write header:", err)
		os.Exit(1)
	}

	for i := 0; i < *count; i++ {
		if err := cw.Write(generateRow(rng, i)); err != nil {
			fmt.Fprintln(os.Stderr, "write row:", err)
			os.Exit(1)
		}
	}
}

func generateRow(rng *rand.Rand, i int) []string {
	dept := departments[rng.Intn(len(departments))]
	title := jobTitles[rng.Intn(len(jobTitles))]

	var (
		performance  float64
		satisfaction float64
		training     float64
		projects     int
		sickDays     int
	)

	switch rng.Intn(profileCount) {
	case caseHighPerformer:
		performance = 4.0 + rng.Float64()
		satisfaction = 3.5 + rng.Float64()*1.5
		training = 25 + rng.Float64()*20
		projects = 5 + rng.Intn(6)
		sickDays = rng.Intn(4)
	case caseAtRisk:
		performance = 1.0 + rng.Float64()*1.5
		satisfaction = 1.0 + rng.Float64()*1.5
		training = rng.Float64() * 15
		projects = rng.Intn(3)
		sickDays = 3 + rng.Intn(8)
	case caseUndertrained:
		performance = 2.0 + rng.Float64()*2
		satisfaction = 2.5 + rng.Float64()*2
		training = rng.Float64() * 12
		projects = 1 + rng.Intn(5)
		sickDays = rng.Intn(6)
	case caseOverworked:
		performance = 3.0 + rng.Float64()*1.5
		satisfaction = 1.5 + rng.Float64()*2
		training = 10 + rng.Float64()*20
		projects = 8 + rng.Intn(5)
		sickDays = 4 + rng.Intn(7)
	default:
		performance = 2.5 + rng.Float64()*2
		satisfaction = 2.0 + rng.Float64()*2.5
		training = 5 + rng.Float64()*30
		projects = 1 + rng.Intn(8)
		sickDays = rng.Intn(7)
	}

	tenure := rng.Float64() * 15

	return []string{
		fmt.Sprintf("EMP%04d", i+1),
		fmt.Sprintf("Employee %d", i+1),
		dept,
		title,
		strconv.FormatFloat(tenure, 'f', 1, 64),
		strconv.FormatFloat(performance, 'f', 1, 64),
		strconv.FormatFloat(training, 'f', 1, 64),
		strconv.Itoa(projects),
		strconv.FormatFloat(satisfaction, 'f', 1, 64),
		strconv.Itoa(sickDays),
	}
}
