// File: yogasund/handlers/bundle.go
package handlers

import (
	"yogasund/braincore"
	"yogasund/services/auth"
	"yogasund/services/booking"
	"yogasund/services/content"
	"yogasund/services/term"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	SessionStore auth.SessionStore

	// Auth endpoints
	Login      gin.HandlerFunc
	Signup     gin.HandlerFunc
	CheckEmail gin.HandlerFunc
	Logout     gin.HandlerFunc
	Me         gin.HandlerFunc

	// Schedule endpoints
	GetSchedule       gin.HandlerFunc
	GetBookingOptions gin.HandlerFunc

	// Membership and term wizard endpoints
	ListMembershipPlans gin.HandlerFunc

	StartTermSession  gin.HandlerFunc
	GetTermSession    gin.HandlerFunc
	SelectWeekOne     gin.HandlerFunc
	ResolveConflict   gin.HandlerFunc
	TermCheckout      gin.HandlerFunc
	CancelTermSession gin.HandlerFunc

	// Drop-in booking endpoints
	CreateBooking      gin.HandlerFunc
	ListMemberBookings gin.HandlerFunc
	CancelBooking      gin.HandlerFunc

	// Payment endpoints
	CreatePaymentIntent gin.HandlerFunc
	ConfirmPayment      gin.HandlerFunc

	// Content endpoints
	ListTeachers    gin.HandlerFunc
	GetTeacher      gin.HandlerFunc
	ListClassStyles gin.HandlerFunc
	GetClassStyle   gin.HandlerFunc
	ListArticles    gin.HandlerFunc
	GetArticle      gin.HandlerFunc

	// Community endpoints
	ListCommunityPosts  gin.HandlerFunc
	CreateCommunityPost gin.HandlerFunc
	DeleteCommunityPost gin.HandlerFunc

	// Admin content endpoints
	SaveTeacher      gin.HandlerFunc
	DeleteTeacher    gin.HandlerFunc
	SaveClassStyle   gin.HandlerFunc
	DeleteClassStyle gin.HandlerFunc
	SaveArticle      gin.HandlerFunc
	DeleteArticle    gin.HandlerFunc
}

// NewHandlerBundle wires every handler to its service.
func NewHandlerBundle(
	store auth.SessionStore,
	bcClient *braincore.Client,
	authSvc auth.AuthService,
	bookingSvc booking.BookingService,
	paymentSvc booking.PaymentService,
	termSvc term.TermBookingService,
	contentSvc content.ContentService,
	communitySvc content.CommunityService,
) *HandlerBundle {
	return &HandlerBundle{
		SessionStore: store,

		Login:      LoginHandler(authSvc),
		Signup:     SignupHandler(authSvc),
		CheckEmail: CheckEmailHandler(authSvc),
		Logout:     LogoutHandler(authSvc),
		Me:         MeHandler(authSvc),

		GetSchedule:       GetScheduleHandler(bookingSvc),
		GetBookingOptions: GetBookingOptionsHandler(bookingSvc),

		ListMembershipPlans: ListMembershipPlansHandler(bcClient),

		StartTermSession:  StartTermSessionHandler(termSvc),
		GetTermSession:    GetTermSessionHandler(termSvc),
		SelectWeekOne:     SelectWeekOneHandler(termSvc),
		ResolveConflict:   ResolveConflictHandler(termSvc),
		TermCheckout:      TermCheckoutHandler(termSvc),
		CancelTermSession: CancelTermSessionHandler(termSvc),

		CreateBooking:      CreateBookingHandler(bookingSvc),
		ListMemberBookings: ListMemberBookingsHandler(bookingSvc),
		CancelBooking:      CancelBookingHandler(bookingSvc),

		CreatePaymentIntent: CreatePaymentIntentHandler(paymentSvc),
		ConfirmPayment:      ConfirmPaymentHandler(paymentSvc),

		ListTeachers:    ListTeachersHandler(contentSvc),
		GetTeacher:      GetTeacherHandler(contentSvc),
		ListClassStyles: ListClassStylesHandler(contentSvc),
		GetClassStyle:   GetClassStyleHandler(contentSvc),
		ListArticles:    ListArticlesHandler(contentSvc),
		GetArticle:      GetArticleHandler(contentSvc),

		ListCommunityPosts:  ListCommunityPostsHandler(communitySvc),
		CreateCommunityPost: CreateCommunityPostHandler(communitySvc),
		DeleteCommunityPost: DeleteCommunityPostHandler(communitySvc),

		SaveTeacher:      SaveTeacherHandler(contentSvc),
		DeleteTeacher:    DeleteTeacherHandler(contentSvc),
		SaveClassStyle:   SaveClassStyleHandler(contentSvc),
		DeleteClassStyle: DeleteClassStyleHandler(contentSvc),
		SaveArticle:      SaveArticleHandler(contentSvc),
		DeleteArticle:    DeleteArticleHandler(contentSvc),
	}
}
