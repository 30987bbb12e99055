package services

// verifyEmailHTML carries the registration link. Placeholders: intro
// text, link href, link href (plain), current year.
const verifyEmailHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Complete Your Registration</title>
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; line-height: 1.6; color: #333; background-color: #f8f9fa; margin: 0; padding: 20px; }
  .container { max-width: 500px; margin: auto; background: #ffffff; border: 1px solid #e9ecef; border-radius: 8px; overflow: hidden; }
  .header { background-color: #2563eb; color: white; padding: 20px; text-align: center; }
  .header h1 { margin: 0; font-size: 24px; }
  .content { padding: 30px; text-align: center; }
  .button { font-size: 16px; font-weight: bold; color: #ffffff; background-color: #2563eb; padding: 12px 28px; border-radius: 5px; display: inline-block; margin: 20px 0; text-decoration: none; }
  .link { font-size: 12px; color: #6c757d; word-break: break-all; }
  .footer { background-color: #f8f9fa; padding: 20px; text-align: center; font-size: 12px; color: #6c757d; }
  p { margin-bottom: 1em; }
</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Complete Your Registration</h1>
    </div>
    <div class="content">
      <p>%s</p>
      <a class="button" href="%s">Create your account</a>
      <p class="link">%s</p>
      <p>If you did not request this email, you can safely ignore it.</p>
    </div>
    <div class="footer">
      &copy; %d TTCS. All rights reserved.
    </div>
  </div>
</body>
</html>`
