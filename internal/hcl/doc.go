// Package hcl provides the HCL implementation of config.Loader. It reads
// `app` blocks from native HCL (.hcl) and HCL JSON (.json) files and
// translates them into config.LaunchSpec records.
//
//	app "chainlink" {
//	  script = "chainlink node start --password=.password"
//
//	  env {
//	    ETH_CHAIN_ID = "5"
//	  }
//	}
//
// An app may carry several env blocks; they are merged in order, so a key in
// a later block overrides the same key in an earlier one.
package hcl
