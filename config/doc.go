// Package config loads logger configurations from files.
//
// JSON, YAML and TOML are supported; the format follows the file
// extension. All three decode into logger.Config, for example in YAML:
//
//	name: api
//	level: INFO
//	formatter:
//	  type: json
//	appenders:
//	  - type: console
//	  - type: file
//	    file_path: /var/log/api.log
//	    filters:
//	      - type: level
//	        level: ERROR
//
// PIPELOG_NAME and PIPELOG_LEVEL override the name and level after loading.
package config
