package network

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bounce/game"
	"bounce/protocol"
)

var errBallOverflow = errors.New("ball state overflowed")

// updateBallHandler steps the ball the client sent and returns it. Nothing is
// kept between calls; world is read-only.
func updateBallHandler(world game.World) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := c.GetRawData()
		if err != nil {
			status := http.StatusBadRequest
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				status = http.StatusRequestEntityTooLarge
			}
			abortWithError(c, status, err)
			return
		}

		ball, err := protocol.DecodeUpdate(body)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, err)
			return
		}

		next := game.Step(ball, world)
		if !next.Finite() {
			abortWithError(c, http.StatusUnprocessableEntity, errBallOverflow)
			return
		}

		c.JSON(http.StatusOK, protocol.NewBallState(next))
	}
}

func indexHandler(world game.World) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"Width":  world.Width,
			"Height": world.FloorY,
		})
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, protocol.Health{Status: "ok"})
}

func abortWithError(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, protocol.Error{Error: err.Error()})
}
