// Package sink contains Sinks which receive the Estimates produced by Aggregators:
// in-memory recording, logging, JSON lines streams (optionally lz4-compressed via
// https://github.com/pierrec/lz4), and publication to an AMQP exchange via
// https://github.com/rabbitmq/amqp091-go.
package sink
