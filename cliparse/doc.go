// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment variables.

# Configuration Loading

ParseFlags parses command-line arguments with environment variable fallback:

	if err := cliparse.LoadEnvFile(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

CLI flags take precedence over environment variables. LoadEnvFile only fills
variables that are not already set.

# Config Fields

	type Config struct {
	    Port         int           // -p or PORT (default: 3318)
	    StoreURL     string        // -s or STORE_URL (required)
	    StoreType    string        // -t or STORE_TYPE (inferred from URL)
	    StoreToken   string        // --store-token or STORE_TOKEN
	    StoreTimeout time.Duration // --store-timeout or STORE_TIMEOUT (default: 3s)
	    SiteURL      string        // --site-url or SITE_URL
	    IPHashSalt   string        // --ip-salt or IP_HASH_SALT (required)
	}

UPSTASH_REDIS_REST_URL and UPSTASH_REDIS_REST_TOKEN are accepted as fallbacks
for STORE_URL and STORE_TOKEN.

# Store Type Inference

When STORE_TYPE is unset the scheme decides:

  - redis://, rediss://, https:// → redis
  - postgres://, postgresql:// → postgres
  - anything else → sqlite (treated as a file path or DSN)

# Validation

ParseFlags fails fast when:

  - STORE_URL is missing
  - IP_HASH_SALT is missing
  - the store is redis and no token or URL credentials are supplied
  - PORT or STORE_TIMEOUT cannot be parsed
*/
package cliparse
