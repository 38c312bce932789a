// Package config handles loading and validating smart house configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables
//   - Validation of required fields and device declarations
//   - Default value handling
//
// The house section seeds the rooms and devices present at startup:
//
//	house:
//	  rooms:
//	    - name: hall
//	      devices:
//	        - name: socket1
//	          type: power_socket
//	          description: "by the door"
//	        - name: therm1
//	          type: thermometer
//	          temperature: {unit: celsius, value: 18}
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Site.Name)
package config
