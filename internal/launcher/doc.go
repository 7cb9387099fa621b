// Package launcher starts the processes described by config.LaunchSpec
// records. Each record is spawned exactly once with its env overlay applied;
// the launcher waits for the process to exit and never restarts it.
// Cancelling the context interrupts the process and kills it after a grace
// period.
package launcher
