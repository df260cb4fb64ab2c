/*
Package helloworld implements a minimal xcall endpoint: it binds once to a trusted
gateway contract, forwards outbound call messages to remote network addresses through
that gateway, and records inbound messages delivered by it, flagging the rollback
sentinel payload "ExecuteRollback".
*/
package helloworld
