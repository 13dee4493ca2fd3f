// Package beca builds the backend resources of a payload-relay service: the
// MongoDB connection, the database handle, one collection per entity, the
// entity services and the template mapper.
//
// # Overview
//
// CreateDependencies assembles the whole graph once, in dependency order, and
// hands out the same instances for as long as the result lives:
//
//	dbClient -> db -> {sources,mappings,targets,responses}Collection -> *Service
//	mapperService (no dependencies)
//
// No query is sent while building. A connection string that cannot be parsed
// fails; an unreachable server does not.
//
// # Basic Usage
//
//	deps, err := beca.CreateDependencies(ctx, beca.Config{DBName: "relay"},
//	    beca.WithLogger(logger),
//	)
//	if err != nil {
//	    return err
//	}
//	defer deps.Close(ctx)
//
//	r := deps.SelectNames("targetsService", "mapperService")
//	targets, err := r.TargetsService().GetAll(ctx)
//
// # Configuration
//
// Every Config field is optional. Empty fields take the Default* constants.
// ConfigFromMap accepts the override keys URL, DBNAME, SOURCES, MAPPINGS,
// TARGETS and RESPONSES; FromEnv reads the same keys prefixed with BECA_;
// LoadConfig reads a YAML file.
//
// # Selection
//
// Select and SelectNames project the built graph onto the requested names.
// Unrecognized names are dropped and no names yield an empty Resources.
// Typed accessors on Resources return the zero value for names that were not
// selected.
//
// # Error Handling
//
// Building returns the first construction failure unchanged. Operations on
// the built services return errors classified with package fault:
//
//	doc, err := r.TargetsService().GetByID(ctx, id)
//	switch {
//	case fault.TypeOf(err, fault.Database):
//	    // retry later
//	case fault.TypeOf(err, fault.TargetFormat):
//	    // reject the input
//	}
//
// # Thread Safety
//
// Dependencies and every resource it hands out are safe for concurrent use.
package beca
