package email

// Email templates in HTML format

// BaseTemplate is the base layout for all emails
const BaseTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body {
            margin: 0;
            padding: 0;
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background-color: #faf8f5;
            color: #1a1a1a;
        }
        .container {
            max-width: 600px;
            margin: 0 auto;
            padding: 40px 20px;
        }
        .card {
            background: #ffffff;
            border-radius: 12px;
            padding: 32px;
            border: 1px solid #e8e2d9;
        }
        .logo {
            text-align: center;
            margin-bottom: 24px;
        }
        .logo h1 {
            font-size: 28px;
            font-family: Georgia, 'Times New Roman', serif;
            color: #2d2a26;
            margin: 0;
        }
        h2 {
            color: #2d2a26;
            font-size: 22px;
            margin: 0 0 16px;
        }
        p {
            color: #555555;
            font-size: 16px;
            line-height: 1.6;
            margin: 0 0 12px;
        }
        .info-box {
            background: #faf8f5;
            border-radius: 8px;
            padding: 16px;
            margin: 16px 0;
        }
        .footer {
            text-align: center;
            margin-top: 32px;
            color: #999999;
            font-size: 12px;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="card">
            <div class="logo">
                <h1>Capture Sangli</h1>
            </div>
            {{.Content}}
        </div>
        <div class="footer">
            <p>Capture Sangli Photography Studio, Sangli, Maharashtra</p>
        </div>
    </div>
</body>
</html>
`

// ContactSubmissionTemplate - notification for a new contact form submission
const ContactSubmissionTemplate = `
<h2>New Contact Form Submission</h2>
<div class="info-box">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Message:</strong> {{.Message}}</p>
</div>
`

// BookingRequestTemplate - notification for a new booking request
const BookingRequestTemplate = `
<h2>New Photography Session Booking</h2>
<div class="info-box">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Phone:</strong> {{.Phone}}</p>
    <p><strong>Service:</strong> {{.Service}}</p>
    <p><strong>Date:</strong> {{.BookingDate}}</p>
    <p><strong>Time Slot:</strong> {{.TimeSlot}}</p>
</div>
`
