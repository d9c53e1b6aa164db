// Package repoconfig loads per-repository scanning configuration.
//
// Configuration lives in a directory of declarative files named after the
// repository ("owner/linea" reads linea.yaml, linea.yml or linea.hcl) with
// default.yaml|yml|hcl as the shared fallback:
//
//	pathsIgnored:
//	  - test
//	rulesExcluded:
//	  - js/log-injection
//	languages_config:
//	  - language: java-kotlin
//	    build_mode: manual
//	    build_command: ./gradlew build
//	    version: "21"
//	  - language: cpp
//	    ignore: true
//	queries:
//	  - name: Custom queries
//	    uses: ./custom-queries/query-suites/custom-queries.qls
//
// Loading never fails. A missing directory, missing files, or a file that
// does not parse or validate all yield Builtin(); the reason is logged and
// reported to the context's notifier.
package repoconfig
