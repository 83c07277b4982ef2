/*

Package gconf implements a configuration store intended to be used as a
global, in-database configuration.

Each extension stores its configuration as a singleton entity, keyed by the
package name. Configuration is loaded from the genesis file and can later be
amended by a patch message, authorized by the configuration owner.

*/
package gconf
