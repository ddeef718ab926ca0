package http

import (
	jwt "github.com/appleboy/gin-jwt/v2"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"github.com/stewardhq/steward/src/calendar"
	"github.com/stewardhq/steward/src/log"
	"github.com/stewardhq/steward/src/models"
	"github.com/stewardhq/steward/src/monitor"
)

// StartServer boots the REST api through which the conversational agent
// invokes the tools. This call blocks.
func StartServer(port string, configuration *models.Configuration, communication *models.Communication, recorder *monitor.MotionRecorder, store *calendar.Store) {

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	pprof.Register(r)

	r.Use(CORS())

	middleWare := JWTMiddleWare()
	authMiddleware, err := jwt.New(&middleWare)
	if err != nil {
		log.Log.Fatal("routers.http.StartServer(): JWT error: " + err.Error())
	}

	AddRoutes(r, authMiddleware, configuration, communication, recorder, store)

	err = r.Run(":" + port)
	if err != nil {
		log.Log.Fatal("routers.http.StartServer(): " + err.Error())
	}
}
