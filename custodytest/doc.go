/*
Package custodytest provides helpers for testing custody packages: key
generation, persistent test stores and stores that fail on demand.
*/
package custodytest
