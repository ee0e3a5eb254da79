// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Feedback: One stored star-rating submission
  - Stats: Aggregate statistics over all feedback

# Request Types

  - SubmitFeedbackRequest: POST /api/feedback body
  - ChangePasswordRequest: POST /api/change-password body

# Response Types

  - MessageResponse: Success envelope ({message, success:true})
  - ErrorResponse: Error envelope ({error, success:false})

All JSON field names use snake_case to match the existing client pages.
*/
package models
