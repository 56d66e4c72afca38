package zmq

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Receiver is the part of *gozmq.Conn used by the listener.
	Receiver interface {
		Receive(bufs [][]byte) ([][]byte, error)
		Close() error
	}

	// Metrics counts received notifications per topic.
	Metrics interface {
		ObserveReceive(topic string, err error)
	}
)
