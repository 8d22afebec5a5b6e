// Dumps every binary-search probe for one retirement age, for checking the
// feasibility boundary by hand. Usage: debug_search <config-file> <age>
package main

import (
	"fmt"
	"os"
	"strconv"

	calc "github.com/spendmax/enjoyment-calculator/internal/calculation"
	"github.com/spendmax/enjoyment-calculator/internal/config"
)

type stdoutLogger struct{}

func (stdoutLogger) Debugf(format string, args ...any) { fmt.Printf(format+"\n", args...) }
func (stdoutLogger) Infof(format string, args ...any)  { fmt.Printf(format+"\n", args...) }
func (stdoutLogger) Warnf(format string, args ...any)  { fmt.Printf(format+"\n", args...) }
func (stdoutLogger) Errorf(format string, args ...any) { fmt.Printf(format+"\n", args...) }

func main() {
	if len(os.Args) < 3 {
		fmt.Println("usage: debug_search <config-file> <retirement-age>")
		return
	}
	age, err := strconv.ParseFloat(os.Args[2], 64)
	if err != nil {
		panic(err)
	}

	cfg, err := config.NewInputParser().LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	engine := calc.NewCalculationEngine()
	engine.Debug = true
	engine.SetLogger(stdoutLogger{})

	found, err := engine.FindMaxFeasibleSpending(cfg.Parameters().WithRetirementAge(age), cfg.Sweep.Grid)
	if err != nil {
		panic(err)
	}
	if found == nil {
		fmt.Printf("age %.2f: no feasible spending on grid [%s, %s] step %s\n", age, cfg.Sweep.Grid.Min, cfg.Sweep.Grid.Max, cfg.Sweep.Grid.Step)
		return
	}
	fmt.Printf("age %.2f: spending=%s enjoyment=%.4f final_wealth=%.2f\n", age, found.MonthlySpending, found.TotalEnjoyment, found.FinalWealth)
}
