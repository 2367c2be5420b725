// Package runlog persists an advisory history of sync runs in SQLite.
//
// The journal is write-behind reporting for `titlesync history`: the engine
// never reads it, so a cold run is always fully derived from the timeline's
// current contents. Schema changes bump the version in schema.go; users
// delete the database to adopt the new schema.
package runlog
