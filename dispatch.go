package kvkit

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hupe1980/kvkit/cms"
	"github.com/hupe1980/kvkit/geohash"
)

// Dispatcher maps parsed commands onto the underlying data structures. One
// dispatcher serves one registry; both must be serialized externally.
type Dispatcher struct {
	reg  *Registry
	opts options
}

// NewDispatcher creates a Dispatcher over reg.
func NewDispatcher(reg *Registry, optFns ...Option) *Dispatcher {
	return &Dispatcher{
		reg:  reg,
		opts: applyOptions(optFns),
	}
}

// Dispatch parses and executes one request buffer and returns the reply.
// Failures are reported through the reply status; Dispatch itself never
// panics on malformed input.
func (d *Dispatcher) Dispatch(buf []byte) Reply {
	cmd, err := ParseCommand(buf)
	if err != nil {
		return fail(StatusNilCommand, err)
	}

	reply := d.execute(cmd)
	if reply.Status < StatusOK {
		d.opts.logger.LogDispatch(cmd, reply.Status, errors.New(reply.Message))
	} else {
		d.opts.logger.LogDispatch(cmd, reply.Status, nil)
	}

	return reply
}

func (d *Dispatcher) execute(cmd *Command) Reply {
	switch cmd.Type {
	case "PING":
		return ok("PONG")
	case "CMS":
		return d.executeCMS(cmd)
	case "ZSET":
		return d.executeZSet(cmd)
	case "GEO":
		return d.executeGeo(cmd)
	default:
		return fail(StatusUnknownCommand, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Type))
	}
}

func (d *Dispatcher) executeCMS(cmd *Command) Reply {
	switch cmd.Subtype {
	case "INITBYDIM":
		name, err := stringArg(cmd, 0)
		if err != nil {
			return fail(StatusBadArgument, err)
		}

		// Width and depth are optional; the registry default applies when
		// both are absent.
		var width, depth uint64
		if len(cmd.Args) > 1 {
			if width, err = uintArg(cmd, 1); err != nil {
				return fail(StatusBadArgument, err)
			}
			if depth, err = uintArg(cmd, 2); err != nil {
				return fail(StatusBadArgument, err)
			}
		}

		if err := d.reg.CreateSketch(name, uint32(width), uint32(depth)); err != nil {
			return fail(statusFor(err), err)
		}

		return ok("OK")
	case "INITBYPROB":
		name, err := stringArg(cmd, 0)
		if err != nil {
			return fail(StatusBadArgument, err)
		}

		errorRate, err := floatArg(cmd, 1)
		if err != nil {
			return fail(StatusBadArgument, err)
		}

		confidence, err := floatArg(cmd, 2)
		if err != nil {
			return fail(StatusBadArgument, err)
		}

		if err := d.reg.CreateSketchByProb(name, errorRate, confidence); err != nil {
			return fail(statusFor(err), err)
		}

		return ok("OK")
	case "INCRBY":
		name, err := stringArg(cmd, 0)
		if err != nil {
			return fail(StatusBadArgument, err)
		}

		key, err := stringArg(cmd, 1)
		if err != nil {
			return fail(StatusBadArgument, err)
		}

		amount, err := uintArg(cmd, 2)
		if err != nil {
			return fail(StatusBadArgument, err)
		}

		sketch, err := d.reg.Sketch(name)
		if err != nil {
			return fail(statusFor(err), err)
		}

		estimate := sketch.AddN(key, uint32(amount))

		return ok(strconv.FormatInt(int64(estimate), 10))
	case "QUERY":
		name, err := stringArg(cmd, 0)
		if err != nil {
			return fail(StatusBadArgument, err)
		}

		key, err := stringArg(cmd, 1)
		if err != nil {
			return fail(StatusBadArgument, err)
		}

		sketch, err := d.reg.Sketch(name)
		if err != nil {
			return fail(statusFor(err), err)
		}

		return ok(strconv.FormatInt(int64(sketch.Count(key)), 10))
	default:
		return fail(StatusUnknownCommand, fmt.Errorf("%w: CMS.%s", ErrUnknownCommand, cmd.Subtype))
	}
}

func (d *Dispatcher) executeZSet(cmd *Command) Reply {
	name, err := stringArg(cmd, 0)
	if err != nil {
		return fail(StatusBadArgument, err)
	}

	member, err := stringArg(cmd, 1)
	if err != nil {
		return fail(StatusBadArgument, err)
	}

	set := d.reg.OrderedSet(name)

	switch cmd.Subtype {
	case "ADD":
		return ok(boolReply(set.Insert(member)))
	case "REMOVE":
		return ok(boolReply(set.Erase(member)))
	case "CONTAINS":
		return ok(boolReply(set.Contains(member)))
	default:
		return fail(StatusUnknownCommand, fmt.Errorf("%w: ZSET.%s", ErrUnknownCommand, cmd.Subtype))
	}
}

func (d *Dispatcher) executeGeo(cmd *Command) Reply {
	switch cmd.Subtype {
	case "ENCODE":
		lat, err := floatArg(cmd, 0)
		if err != nil {
			return fail(StatusBadArgument, err)
		}

		lon, err := floatArg(cmd, 1)
		if err != nil {
			return fail(StatusBadArgument, err)
		}

		precision := geohash.DefaultPrecision
		if len(cmd.Args) > 2 {
			p, err := uintArg(cmd, 2)
			if err != nil {
				return fail(StatusBadArgument, err)
			}
			precision = int(p)
		}

		code, err := geohash.Encode(geohash.Point{Lat: lat, Lon: lon}, precision)
		if err != nil {
			return fail(StatusBadArgument, err)
		}

		return ok(code)
	case "DECODE":
		code, err := stringArg(cmd, 0)
		if err != nil {
			return fail(StatusBadArgument, err)
		}

		p, err := geohash.Decode(code)
		if err != nil {
			return fail(StatusBadArgument, err)
		}

		return ok(fmt.Sprintf("%g %g", p.Lat, p.Lon))
	case "ADJACENT":
		code, err := stringArg(cmd, 0)
		if err != nil {
			return fail(StatusBadArgument, err)
		}

		dirName, err := stringArg(cmd, 1)
		if err != nil {
			return fail(StatusBadArgument, err)
		}

		dir, err := parseDirection(dirName)
		if err != nil {
			return fail(StatusBadArgument, err)
		}

		neighbor, err := geohash.Adjacent(code, dir)
		if err != nil {
			return fail(StatusBadArgument, err)
		}

		return ok(neighbor)
	default:
		return fail(StatusUnknownCommand, fmt.Errorf("%w: GEO.%s", ErrUnknownCommand, cmd.Subtype))
	}
}

func parseDirection(name string) (geohash.Direction, error) {
	switch name {
	case "NORTH", "north":
		return geohash.North, nil
	case "SOUTH", "south":
		return geohash.South, nil
	case "EAST", "east":
		return geohash.East, nil
	case "WEST", "west":
		return geohash.West, nil
	default:
		return 0, &ErrBadArgument{Position: 1, Value: name}
	}
}

func statusFor(err error) int32 {
	switch {
	case errors.Is(err, ErrSketchExists):
		return StatusSketchExists
	case errors.Is(err, ErrSketchNotFound):
		return StatusSketchNotFound
	case errors.Is(err, ErrUnknownCommand):
		return StatusUnknownCommand
	case errors.Is(err, cms.ErrInvalidDimensions), errors.Is(err, cms.ErrInvalidProbability):
		return StatusBadArgument
	default:
		return StatusUnknown
	}
}

func boolReply(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func stringArg(cmd *Command, pos int) (string, error) {
	if pos >= len(cmd.Args) {
		return "", &ErrBadArgument{Position: pos, Value: ""}
	}
	return cmd.Args[pos], nil
}

func uintArg(cmd *Command, pos int) (uint64, error) {
	raw, err := stringArg(cmd, pos)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, &ErrBadArgument{Position: pos, Value: raw, cause: err}
	}

	return v, nil
}

func floatArg(cmd *Command, pos int) (float64, error) {
	raw, err := stringArg(cmd, pos)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ErrBadArgument{Position: pos, Value: raw, cause: err}
	}

	return v, nil
}
