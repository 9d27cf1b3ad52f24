// Package harness runs fixture conformance cases through the transform
// pipeline.
//
// # Case Format
//
// Cases are YAML files:
//
//	name: symbol_comparison
//	description: "typeof compared against \"symbol\" is rewritten"
//	helpers: inline        # optional: inline (default) or import
//	input: |
//	  typeof Symbol() === "symbol";
//	expect: |
//	  function _typeof(obj) { ... }
//	  _typeof(Symbol()) === "symbol";
//
// Output is compared exactly. A module the passes leave untouched is
// emitted as its original text, so its expect is identical to its input.
//
// # Usage
//
//	cases, err := harness.LoadDir("testdata/cases")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	results, err := harness.RunAll(ctx, cases)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range results {
//	    if !r.Pass {
//	        log.Println(r.Name, r.Errors)
//	    }
//	}
package harness
