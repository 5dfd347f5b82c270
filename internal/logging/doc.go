// Package logging provides structured logging for the OmniLogic client.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the client. It provides both general logging functions
// and specialized functions for protocol-specific logging needs.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (hex dumps, fragment collection progress)
//   - Info: Normal operations (connection lifecycle, requests)
//   - Warn: Non-fatal issues (retransmits, dropped datagrams)
//   - Error: Fatal issues (exhausted retransmits, malformed messages)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("request sent",
//	    zap.String("remote_addr", "192.168.1.100:10444"),
//	    zap.Uint32("id", msgID),
//	)
//
// # Specialized Logging
//
// The package provides domain-specific logging functions for the
// reliability layer:
//
//	logging.LogSend(remoteAddr, msgID, msgType, attempt)
//	logging.LogRetransmit(remoteAddr, msgID, attempt, maxAttempts)
//	logging.LogAckTimeout(remoteAddr, msgID, maxAttempts)
//	logging.LogFragmentWait(msgID, blocksReceived, blocksExpected)
//	logging.LogDroppedDatagram(msgID, msgType)
//	logging.LogUnexpectedMessage(context, gotID, gotType)
//
// # Configuration
//
// Initialize logging at client startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Output Format
//
// Logs are written to stdout in console format (human-readable) for
// development and can be configured for JSON format in production:
//
//	2025-11-25T10:30:45.123-0800  WARN  ACK wait timed out, retransmitting
//	  remote_addr=192.168.1.100:10444
//	  id=1234567
//	  attempt=2
//	  max_attempts=5
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
