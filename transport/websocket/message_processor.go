package websocket

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const (
	opText  byte = 0x1
	opClose byte = 0x8
	opPing  byte = 0x9
	opPong  byte = 0xA

	maxPayloadSize = 64 << 10
)

var (
	ErrConnectionClosed = errors.New("connection closed by peer")
	ErrFrameTooLarge    = errors.New("frame payload is too large")
	ErrFragmentedFrame  = errors.New("fragmented frames are not supported")
)

// frame represents a WebSocket frame and its metadata.
type frame struct {
	isFin   bool
	opCode  byte
	payload []byte
}

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RequestPayload carries the arguments of game actions.
type RequestPayload struct {
	Difficulty string `json:"difficulty,omitempty"`
	Cell       *int   `json:"cell,omitempty"`
}

type ResponsePayload struct {
	Game  *entity.Game  `json:"game,omitempty"`
	Stats *entity.Stats `json:"stats,omitempty"`
	Error string        `json:"error,omitempty"`
}

func (that *Server) sendMessage(bufrw *bufio.ReadWriter, action string, payload ResponsePayload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	responseBytes, err := json.Marshal(Message{Action: action, Payload: payloadBytes})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	return writeFrame(bufrw.Writer, frame{isFin: true, opCode: opText, payload: responseBytes})
}

// writeFrame writes an unmasked server frame and flushes it.
func writeFrame(w *bufio.Writer, frameData frame) error {
	header := make([]byte, 2, 10)
	header[0] = frameData.opCode
	if frameData.isFin {
		header[0] |= 0x80
	}

	length := uint64(len(frameData.payload))

	switch {
	case length < 126:
		header[1] = byte(length)
	case length < 1<<16:
		header[1] = 126
		header = binary.BigEndian.AppendUint16(header, uint16(length))
	default:
		header[1] = 127
		header = binary.BigEndian.AppendUint64(header, length)
	}

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write frame header: %w", err)
	}

	if _, err := w.Write(frameData.payload); err != nil {
		return fmt.Errorf("failed to write frame payload: %w", err)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffer: %w", err)
	}

	return nil
}

// readFrame reads one frame and unmasks its payload.
func readFrame(r *bufio.Reader) (frame, error) {
	header := make([]byte, 2)
	if _, err := io.ReadFull(r, header); err != nil {
		return frame{}, fmt.Errorf("failed to read header: %w", err)
	}

	result := frame{
		isFin:  header[0]&0x80 != 0,
		opCode: header[0] & 0x0f,
	}
	masked := header[1]&0x80 != 0

	size, err := readPayloadLength(r, header[1]&0x7f)
	if err != nil {
		return frame{}, err
	}

	if size > maxPayloadSize {
		return frame{}, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, size)
	}

	var mask []byte
	if masked {
		mask = make([]byte, 4)
		if _, err = io.ReadFull(r, mask); err != nil {
			return frame{}, fmt.Errorf("failed to read mask: %w", err)
		}
	}

	result.payload = make([]byte, size)
	if _, err = io.ReadFull(r, result.payload); err != nil {
		return frame{}, fmt.Errorf("failed to read payload: %w", err)
	}

	if mask != nil {
		for i := range result.payload {
			result.payload[i] ^= mask[i%4]
		}
	}

	return result, nil
}

func readPayloadLength(r io.Reader, payloadLen byte) (uint64, error) {
	switch payloadLen {
	case 126:
		length := make([]byte, 2)
		if _, err := io.ReadFull(r, length); err != nil {
			return 0, fmt.Errorf("failed to read payload length: %w", err)
		}

		return uint64(binary.BigEndian.Uint16(length)), nil
	case 127:
		length := make([]byte, 8)
		if _, err := io.ReadFull(r, length); err != nil {
			return 0, fmt.Errorf("failed to read payload length: %w", err)
		}

		return binary.BigEndian.Uint64(length), nil
	default:
		return uint64(payloadLen), nil
	}
}

// readRequest returns the next text message, answering pings and close frames on the way.
func (that *Server) readRequest(bufrw *bufio.ReadWriter) ([]byte, error) {
	for {
		f, err := readFrame(bufrw.Reader)
		if err != nil {
			return nil, err
		}

		if !f.isFin {
			return nil, ErrFragmentedFrame
		}

		switch f.opCode {
		case opText:
			return f.payload, nil
		case opPing:
			if err = writeFrame(bufrw.Writer, frame{isFin: true, opCode: opPong, payload: f.payload}); err != nil {
				return nil, err
			}
		case opClose:
			_ = writeFrame(bufrw.Writer, frame{isFin: true, opCode: opClose})
			return nil, ErrConnectionClosed
		}
	}
}
