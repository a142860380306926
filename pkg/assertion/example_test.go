package assertion_test

import (
	"fmt"

	"digital.vasic.totems/pkg/assertion"
	"digital.vasic.totems/pkg/logging"
)

func ExampleWithLogger() {
	logger := logging.NewMultiLogger(
		logging.NullLogger{},
		logging.NewConsoleLogger(false),
	)
	engine := assertion.NewEngine(assertion.WithLogger(logger))

	r := engine.Evaluate(assertion.Definition{Type: "lt", Target: "latency_ms", Value: 250}, 120)
	fmt.Println(r.Passed)
}

func ExampleParseDefinition() {
	def, err := assertion.ParseDefinition("names", "nth:1:eq:bob")
	if err != nil {
		panic(err)
	}

	r := assertion.NewEngine().Evaluate(def, []string{"alice", "bob"})
	fmt.Println(r.Passed)
	// Output: true
}
