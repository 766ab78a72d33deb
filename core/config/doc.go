// Package config provides layered configuration resolution for the service.
//
// Configuration is assembled once at startup from four layers, later layers
// overriding earlier ones:
//
//  1. Built-in defaults owned by each section.
//  2. config.toml (missing file tolerated, parse error fatal).
//  3. APP_<SECTION>_<FIELD> environment variables.
//  4. Direct secret variables: DATABASE_URL, JWT_SECRET, REDIS_URL.
//
// Each sub-block implements section.Section, so the loader merges and
// validates sections polymorphically. Validation only runs after every merge
// pass; errors are terminal for startup and no partial configuration is ever
// returned. The resolved Config is immutable and freely shareable.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Addr())
package config
